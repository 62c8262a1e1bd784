package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanvas(t *testing.T) {
	t.Run("valid canvas", func(t *testing.T) {
		raw := []byte(`{"nodes":[{"id":"a","type":"variable","data":{"label":"Set A","name":"a","value":"1"}},{"id":"b","type":"template"}],"edges":[{"source":"a","target":"b"}]}`)

		c, err := ParseCanvas(raw)
		require.NoError(t, err)
		require.Len(t, c.Nodes, 2)
		require.Len(t, c.Edges, 1)
		assert.Equal(t, "Set A", c.Nodes[0].Label())
		assert.Equal(t, "b", c.Nodes[1].Label(), "label falls back to id")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseCanvas(nil)
		require.Error(t, err)
	})

	t.Run("duplicate node id", func(t *testing.T) {
		raw := []byte(`{"nodes":[{"id":"a","type":"t"},{"id":"a","type":"t"}],"edges":[]}`)
		_, err := ParseCanvas(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate node id")
	})

	t.Run("node without type", func(t *testing.T) {
		raw := []byte(`{"nodes":[{"id":"a"}],"edges":[]}`)
		_, err := ParseCanvas(raw)
		require.Error(t, err)
	})

	t.Run("edge to unknown node", func(t *testing.T) {
		raw := []byte(`{"nodes":[{"id":"a","type":"t"}],"edges":[{"source":"a","target":"ghost"}]}`)
		_, err := ParseCanvas(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target")
	})
}

func TestSerializeCanvas_RoundTrip(t *testing.T) {
	// Canonical documents must survive a parse/serialize cycle unchanged,
	// including raw position/data/viewport payloads.
	canonical := []string{
		`{"nodes":[{"id":"n1","type":"prompt","position":{"x":120.5,"y":-40},"data":{"label":"Ask","prompt":"{{input_text}}"}}],"edges":[]}`,
		`{"nodes":[{"id":"a","type":"variable"},{"id":"b","type":"template"}],"edges":[{"id":"e1","source":"a","target":"b","sourceHandle":"out","targetHandle":"in"}],"viewport":{"x":0,"y":0,"zoom":1.25}}`,
		`{"nodes":[],"edges":[],"settings":{"parallelism":2}}`,
	}

	for _, doc := range canonical {
		c, err := ParseCanvas([]byte(doc))
		require.NoError(t, err)

		out, err := SerializeCanvas(c)
		require.NoError(t, err)
		assert.Equal(t, doc, string(out))
	}
}
