// Package graph holds the project canvas model: parsing and byte-stable
// serialization, topology (cycle detection, depth, successor adjacency),
// `{{name}}` template resolution against a variables map, and the
// node-kind registry the executor dispatches through.
package graph

import (
	"encoding/json"
	"fmt"
)

// Canvas is the persisted shape of a project: a node/edge list plus the
// front-end viewport. Position, Data and Viewport stay raw so serializing
// a parsed canvas reproduces the stored bytes exactly.
type Canvas struct {
	Nodes    []Node          `json:"nodes"`
	Edges    []Edge          `json:"edges"`
	Viewport json.RawMessage `json:"viewport,omitempty"`
	Settings *Settings       `json:"settings,omitempty"`
}

// Settings carries per-project execution overrides.
type Settings struct {
	// Parallelism overrides the executor's concurrent-evaluation budget
	// for this project when > 0.
	Parallelism int `json:"parallelism,omitempty"`
}

// Node is one canvas node. Data is the kind-specific payload and is
// opaque here; evaluators decode it themselves.
type Node struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Position json.RawMessage `json:"position,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Edge is one directed dependency: Target runs after Source.
type Edge struct {
	ID           string `json:"id,omitempty"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

// nodeLabel is the conventional display field inside node data.
type nodeLabel struct {
	Label string `json:"label"`
}

// Label returns the node's display label, falling back to its id.
func (n *Node) Label() string {
	if len(n.Data) > 0 {
		var l nodeLabel
		if err := json.Unmarshal(n.Data, &l); err == nil && l.Label != "" {
			return l.Label
		}
	}
	return n.ID
}

// ParseCanvas decodes and validates a stored canvas document.
func ParseCanvas(raw []byte) (*Canvas, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("canvas data is empty")
	}

	var c Canvas
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse canvas: %w", err)
	}

	seen := make(map[string]bool, len(c.Nodes))
	for i, n := range c.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d has no id", i)
		}
		if n.Type == "" {
			return nil, fmt.Errorf("node %q has no type", n.ID)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
	}
	for i, e := range c.Edges {
		if !seen[e.Source] {
			return nil, fmt.Errorf("edge %d references unknown source %q", i, e.Source)
		}
		if !seen[e.Target] {
			return nil, fmt.Errorf("edge %d references unknown target %q", i, e.Target)
		}
	}

	return &c, nil
}

// SerializeCanvas encodes a canvas back to its canonical compact form.
// For canonical input, ParseCanvas followed by SerializeCanvas reproduces
// the input bytes.
func SerializeCanvas(c *Canvas) ([]byte, error) {
	return json.Marshal(c)
}
