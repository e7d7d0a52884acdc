package export

import (
	"math/rand"
	"strings"
)

// The whiteboard format orders records by lexicographic string keys.
// A key body is q 'z's followed by one non-'z' character, so no body
// is a prefix of another and order is decided within the body. That
// keeps appended random tails from ever reordering two keys.
const indexAlphabet = "123456789abcdefghijklmnopqrstuvwxy"

const indexTailAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// IndexGenerator produces unique, strictly increasing index keys:
// "a1".."ay", "az1".."azy", "azz1", and so on. Keys are deterministic
// by default; an optional random source appends an opaque tail for
// callers that want source-format-shaped keys.
type IndexGenerator struct {
	n   int
	rnd *rand.Rand
}

// NewIndexGenerator returns a deterministic generator.
func NewIndexGenerator() *IndexGenerator {
	return &IndexGenerator{}
}

// NewOpaqueIndexGenerator returns a generator that appends a random
// tail drawn from src. Tests inject a fixed source.
func NewOpaqueIndexGenerator(src rand.Source) *IndexGenerator {
	return &IndexGenerator{rnd: rand.New(src)}
}

// Next returns the next key.
func (g *IndexGenerator) Next() string {
	var b strings.Builder
	b.WriteByte('a')
	for i := 0; i < g.n/len(indexAlphabet); i++ {
		b.WriteByte('z')
	}
	b.WriteByte(indexAlphabet[g.n%len(indexAlphabet)])
	g.n++

	if g.rnd != nil {
		for i := 0; i < 4; i++ {
			b.WriteByte(indexTailAlphabet[g.rnd.Intn(len(indexTailAlphabet))])
		}
	}
	return b.String()
}
