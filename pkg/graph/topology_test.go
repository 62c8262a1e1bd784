package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id, kind string) Node {
	return Node{ID: id, Type: kind}
}

func TestBuild(t *testing.T) {
	t.Run("diamond", func(t *testing.T) {
		c := &Canvas{
			Nodes: []Node{node("a", "t"), node("b", "t"), node("c", "t"), node("d", "t")},
			Edges: []Edge{
				{Source: "a", Target: "b"},
				{Source: "a", Target: "c"},
				{Source: "b", Target: "d"},
				{Source: "c", Target: "d"},
			},
		}

		g, err := Build(c)
		require.NoError(t, err)

		assert.Equal(t, 4, g.Len())
		assert.Equal(t, 0, g.Depth("a"))
		assert.Equal(t, 1, g.Depth("b"))
		assert.Equal(t, 1, g.Depth("c"))
		assert.Equal(t, 2, g.Depth("d"))
		assert.Equal(t, 0, g.Indegree("a"))
		assert.Equal(t, 2, g.Indegree("d"))
		assert.ElementsMatch(t, []string{"b", "c"}, g.Successors("a"))
		assert.ElementsMatch(t, []string{"b", "c"}, g.Predecessors("d"))
		assert.Empty(t, g.Predecessors("a"))
	})

	t.Run("depth is longest path", func(t *testing.T) {
		// a → b → d and a → d: d sits at depth 2, not 1.
		c := &Canvas{
			Nodes: []Node{node("a", "t"), node("b", "t"), node("d", "t")},
			Edges: []Edge{
				{Source: "a", Target: "b"},
				{Source: "b", Target: "d"},
				{Source: "a", Target: "d"},
			},
		}

		g, err := Build(c)
		require.NoError(t, err)
		assert.Equal(t, 2, g.Depth("d"))
	})

	t.Run("duplicate edges collapse", func(t *testing.T) {
		c := &Canvas{
			Nodes: []Node{node("a", "t"), node("b", "t")},
			Edges: []Edge{
				{Source: "a", Target: "b"},
				{Source: "a", Target: "b"},
			},
		}

		g, err := Build(c)
		require.NoError(t, err)
		assert.Equal(t, 1, g.Indegree("b"))
		assert.Len(t, g.Successors("a"), 1)
	})

	t.Run("cycle detected", func(t *testing.T) {
		c := &Canvas{
			Nodes: []Node{node("a", "t"), node("b", "t"), node("c", "t")},
			Edges: []Edge{
				{Source: "a", Target: "b"},
				{Source: "b", Target: "c"},
				{Source: "c", Target: "a"},
			},
		}

		_, err := Build(c)
		require.Error(t, err)

		var cycleErr *CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.Equal(t, []string{"a", "b", "c"}, cycleErr.Nodes)
	})

	t.Run("self edge is a cycle", func(t *testing.T) {
		c := &Canvas{
			Nodes: []Node{node("a", "t")},
			Edges: []Edge{{Source: "a", Target: "a"}},
		}

		_, err := Build(c)
		var cycleErr *CycleError
		require.ErrorAs(t, err, &cycleErr)
	})

	t.Run("disconnected components", func(t *testing.T) {
		c := &Canvas{
			Nodes: []Node{node("a", "t"), node("x", "t"), node("b", "t")},
			Edges: []Edge{{Source: "a", Target: "b"}},
		}

		g, err := Build(c)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Depth("x"))
		assert.Equal(t, 1, g.InsertionIndex("x"))
	})
}
