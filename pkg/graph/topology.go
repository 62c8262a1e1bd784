package graph

import (
	"fmt"
	"sort"
	"strings"
)

// CycleError reports the node ids left unorderable by a topological sort.
type CycleError struct {
	Nodes []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("graph contains a cycle through nodes: %s", strings.Join(e.Nodes, ", "))
}

// Graph is the validated topology of one canvas: insertion-ordered nodes,
// successor adjacency, indegrees and depths. It is read-only after Build
// and safe for concurrent readers.
type Graph struct {
	nodes    []Node
	index    map[string]int
	succ     map[string][]string
	pred     map[string][]string
	indegree map[string]int
	depth    map[string]int
}

// Build validates the canvas topology. Duplicate edges collapse to one
// dependency; a cycle (including a self-edge) yields a CycleError.
func Build(c *Canvas) (*Graph, error) {
	g := &Graph{
		nodes:    c.Nodes,
		index:    make(map[string]int, len(c.Nodes)),
		succ:     make(map[string][]string, len(c.Nodes)),
		pred:     make(map[string][]string, len(c.Nodes)),
		indegree: make(map[string]int, len(c.Nodes)),
		depth:    make(map[string]int, len(c.Nodes)),
	}
	for i, n := range c.Nodes {
		g.index[n.ID] = i
		g.indegree[n.ID] = 0
	}

	type pair struct{ from, to string }
	seen := make(map[pair]bool, len(c.Edges))
	for _, e := range c.Edges {
		p := pair{e.Source, e.Target}
		if seen[p] {
			continue
		}
		seen[p] = true
		g.succ[e.Source] = append(g.succ[e.Source], e.Target)
		g.pred[e.Target] = append(g.pred[e.Target], e.Source)
		g.indegree[e.Target]++
	}

	// Kahn's sort doubles as cycle detection and depth assignment. The
	// ready list is kept in insertion order so depths are deterministic.
	pending := make(map[string]int, len(g.indegree))
	var ready []string
	for _, n := range g.nodes {
		pending[n.ID] = g.indegree[n.ID]
		if pending[n.ID] == 0 {
			ready = append(ready, n.ID)
			g.depth[n.ID] = 0
		}
	}

	processed := 0
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		processed++

		for _, next := range g.succ[id] {
			if d := g.depth[id] + 1; d > g.depth[next] {
				g.depth[next] = d
			}
			pending[next]--
			if pending[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if processed != len(g.nodes) {
		var cycle []string
		for id, left := range pending {
			if left > 0 {
				cycle = append(cycle, id)
			}
		}
		sort.Strings(cycle)
		return nil, &CycleError{Nodes: cycle}
	}

	return g, nil
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Successors returns the ids that depend on the given node.
func (g *Graph) Successors(id string) []string {
	return g.succ[id]
}

// Predecessors returns the ids the given node depends on.
func (g *Graph) Predecessors(id string) []string {
	return g.pred[id]
}

// Indegree returns the dependency count of the given node.
func (g *Graph) Indegree(id string) int {
	return g.indegree[id]
}

// Depth returns the longest-path distance from any source to the node.
func (g *Graph) Depth(id string) int {
	return g.depth[id]
}

// InsertionIndex returns the node's position in the canvas node list,
// used as the scheduling tie-break after depth.
func (g *Graph) InsertionIndex(id string) int {
	return g.index[id]
}
