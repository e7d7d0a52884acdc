package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDString(t *testing.T) {
	assert.Equal(t, "1:23", ID{Part1: 1, Part2: 23}.String())
	assert.True(t, ID{}.IsZero())
	assert.False(t, ID{Part2: 1}.IsZero())
}

func TestParseID(t *testing.T) {
	id, err := ParseID("0:281474976710655")
	require.NoError(t, err)
	assert.Equal(t, ID{Part1: 0, Part2: 281474976710655}, id)

	roundTrip, err := ParseID(ID{Part1: 7, Part2: 42}.String())
	require.NoError(t, err)
	assert.Equal(t, ID{Part1: 7, Part2: 42}, roundTrip)

	for _, bad := range []string{"", "12", "a:1", "1:b", "300:1"} {
		_, err := ParseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestWalkOrder(t *testing.T) {
	inner := &Group{Label: "inner"}
	inner.Append(ID{Part1: 1, Part2: 3}, &Stroke{MoveID: 3})

	root := &Group{}
	root.Append(ID{Part1: 1, Part2: 1}, &Stroke{MoveID: 1})
	root.Append(ID{Part1: 1, Part2: 2}, inner)
	root.Append(ID{Part1: 1, Part2: 4}, &Stroke{MoveID: 4})

	tree := &Tree{Root: root, RootText: &Text{}}

	var visited []interface{}
	tree.Walk(func(item Item) {
		switch it := item.(type) {
		case *Stroke:
			visited = append(visited, it.MoveID)
		case *Group:
			visited = append(visited, it.Label)
		}
	})

	// depth-first, insertion order; the root text is not visited
	assert.Equal(t, []interface{}{uint32(1), "inner", uint32(3), uint32(4)}, visited)
}

func TestWalkNilSafe(t *testing.T) {
	var tree *Tree
	tree.Walk(func(Item) { t.Fatal("should not be called") })
	(&Tree{}).Walk(func(Item) { t.Fatal("should not be called") })
}
