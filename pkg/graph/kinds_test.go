package graph

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/pkg/gateway"
)

// fakeCompleter echoes the last user message back, prefixed, and records
// the request for assertions.
type fakeCompleter struct {
	lastReq *gateway.CompletionRequest
	err     error
}

func (f *fakeCompleter) Complete(_ context.Context, req *gateway.CompletionRequest) (*gateway.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	content := "echo: " + req.Messages[len(req.Messages)-1].Content
	return &gateway.CompletionResponse{
		Choices: []gateway.Choice{
			{Message: gateway.ChoiceMessage{Role: gateway.RoleAssistant, Content: content}, FinishReason: "stop"},
		},
	}, nil
}

func evalNode(t *testing.T, e Evaluator, data interface{}, vars map[string]string) (*EvalOutput, *EvalContext, error) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)

	ec := &EvalContext{
		Node:      Node{ID: "n1", Type: e.Kind(), Data: raw},
		Variables: vars,
	}
	out, evalErr := e.Evaluate(context.Background(), ec)
	return out, ec, evalErr
}

func TestPromptKind(t *testing.T) {
	t.Run("renders templates and publishes output", func(t *testing.T) {
		fc := &fakeCompleter{}
		k := &promptKind{completer: fc}

		out, _, err := evalNode(t, k, map[string]interface{}{
			"label":          "Ask",
			"system":         "You speak {{lang}}",
			"prompt":         "summarize {{input_text}}",
			"outputVariable": "summary",
		}, map[string]string{"lang": "Latin", "input_text": "the doc"})
		require.NoError(t, err)

		require.Len(t, fc.lastReq.Messages, 2)
		assert.Equal(t, "You speak Latin", fc.lastReq.Messages[0].Content)
		assert.Equal(t, "summarize the doc", fc.lastReq.Messages[1].Content)

		assert.Equal(t, "echo: summarize the doc", out.Response)
		assert.Equal(t, map[string]string{"summary": "echo: summarize the doc"}, out.EnvWrites)
	})

	t.Run("empty prompt rejected", func(t *testing.T) {
		k := &promptKind{completer: &fakeCompleter{}}
		_, _, err := evalNode(t, k, map[string]interface{}{"label": "x"}, nil)
		require.Error(t, err)
	})

	t.Run("provider error bubbles", func(t *testing.T) {
		fc := &fakeCompleter{err: &gateway.Error{Kind: gateway.KindProviderUnavailable, Message: "open"}}
		k := &promptKind{completer: fc}

		_, _, err := evalNode(t, k, map[string]interface{}{"prompt": "p"}, nil)
		require.Error(t, err)
		assert.Equal(t, gateway.KindProviderUnavailable, gateway.KindOf(err))
	})

	t.Run("continue-on-error policy", func(t *testing.T) {
		k := &promptKind{}
		assert.False(t, k.StopOnError())
	})
}

func TestVariableKind(t *testing.T) {
	k := &variableKind{}

	out, _, err := evalNode(t, k, map[string]interface{}{
		"name":  "greeting",
		"value": "hi {{who}}",
	}, map[string]string{"who": "there"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "hi there"}, out.EnvWrites)
	assert.Equal(t, "hi there", out.Value)

	_, _, err = evalNode(t, k, map[string]interface{}{"value": "v"}, nil)
	require.Error(t, err, "name is required")
}

func TestTemplateKind(t *testing.T) {
	k := &templateKind{}

	out, ec, err := evalNode(t, k, map[string]interface{}{
		"template":       "{{a}}-{{gone}}",
		"outputVariable": "joined",
	}, map[string]string{"a": "1"})
	require.NoError(t, err)
	assert.Equal(t, "1-", out.Text)
	assert.Equal(t, map[string]string{"joined": "1-"}, out.EnvWrites)
	assert.Equal(t, []string{"gone"}, ec.Unresolved())
}

func TestReportKind(t *testing.T) {
	k := &reportKind{}
	assert.False(t, k.StopOnError())

	t.Run("publishes under canonical name", func(t *testing.T) {
		out, _, err := evalNode(t, k, map[string]interface{}{
			"reportName": "Adapted Report",
			"source":     "{{final_text}}",
		}, map[string]string{"final_text": "report body"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Adapted Report": "report body"}, out.EnvWrites)
	})

	t.Run("empty content fails the node", func(t *testing.T) {
		_, _, err := evalNode(t, k, map[string]interface{}{
			"reportName": "Adapted Report",
			"source":     "{{missing}}",
		}, nil)
		require.Error(t, err)
	})
}

func TestAssertKind(t *testing.T) {
	k := &assertKind{}
	assert.True(t, k.StopOnError())

	t.Run("non-empty passes", func(t *testing.T) {
		out, _, err := evalNode(t, k, map[string]interface{}{"value": "{{v}}"}, map[string]string{"v": "ok"})
		require.NoError(t, err)
		assert.Equal(t, "ok", out.Value)
	})

	t.Run("empty fails", func(t *testing.T) {
		_, _, err := evalNode(t, k, map[string]interface{}{"value": "{{v}}"}, nil)
		require.Error(t, err)
	})

	t.Run("equals mismatch fails with message", func(t *testing.T) {
		equals := "expected"
		_, _, err := evalNode(t, k, map[string]interface{}{
			"value":   "{{v}}",
			"equals":  equals,
			"message": "v drifted",
		}, map[string]string{"v": "actual"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "v drifted")
	})
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r, &fakeCompleter{})

	for _, kind := range []string{"prompt", "variable", "template", "report", "assert"} {
		e, err := r.Lookup(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, e.Kind())
	}

	_, err := r.Lookup("unknown")
	require.Error(t, err)

	assert.Len(t, r.Kinds(), 5)
}
