package export

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexGeneratorSequence(t *testing.T) {
	g := NewIndexGenerator()

	assert.Equal(t, "a1", g.Next())
	assert.Equal(t, "a2", g.Next())
	for i := 2; i < 33; i++ {
		g.Next()
	}
	assert.Equal(t, "ay", g.Next())
	assert.Equal(t, "az1", g.Next())
}

func TestIndexGeneratorOrderedAndUnique(t *testing.T) {
	g := NewIndexGenerator()
	keys := make([]string, 200)
	for i := range keys {
		keys[i] = g.Next()
	}

	assert.True(t, sort.StringsAreSorted(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		require.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}
}

func TestOpaqueIndexGeneratorKeepsOrder(t *testing.T) {
	g := NewOpaqueIndexGenerator(rand.NewSource(1))
	keys := make([]string, 200)
	for i := range keys {
		keys[i] = g.Next()
		assert.Len(t, keys[i], len(NewIndexGenerator().Next())+4+(i/34))
	}

	assert.True(t, sort.StringsAreSorted(keys))
}

func TestOpaqueIndexGeneratorDeterministicPerSeed(t *testing.T) {
	a := NewOpaqueIndexGenerator(rand.NewSource(7))
	b := NewOpaqueIndexGenerator(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}
