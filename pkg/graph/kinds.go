package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/assessflow/pipeline/pkg/gateway"
)

// Completer is the slice of the provider gateway the prompt kind needs.
type Completer interface {
	Complete(ctx context.Context, req *gateway.CompletionRequest) (*gateway.CompletionResponse, error)
}

// RegisterBuiltins installs the stock node kinds. Deployments register
// additional kinds before the worker pool starts.
func RegisterBuiltins(r *Registry, completer Completer) {
	r.Register(&promptKind{completer: completer})
	r.Register(&variableKind{})
	r.Register(&templateKind{})
	r.Register(&reportKind{})
	r.Register(&assertKind{})
}

// decodeData unmarshals a node's data payload into the kind's own shape.
func decodeData(n Node, v interface{}) error {
	if len(n.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(n.Data, v); err != nil {
		return fmt.Errorf("node %q: decode data: %w", n.ID, err)
	}
	return nil
}

// promptKind sends a templated prompt to the provider and publishes the
// completion text.
type promptKind struct {
	completer Completer
}

type promptData struct {
	Label           string   `json:"label"`
	Model           string   `json:"model"`
	System          string   `json:"system"`
	Prompt          string   `json:"prompt"`
	Temperature     *float64 `json:"temperature"`
	TopP            *float64 `json:"top_p"`
	MaxTokens       *int     `json:"maxTokens"`
	ReasoningEffort string   `json:"reasoningEffort"`
	OutputVariable  string   `json:"outputVariable"`
}

func (k *promptKind) Kind() string      { return "prompt" }
func (k *promptKind) StopOnError() bool { return false }

func (k *promptKind) Evaluate(ctx context.Context, ec *EvalContext) (*EvalOutput, error) {
	var d promptData
	if err := decodeData(ec.Node, &d); err != nil {
		return nil, err
	}
	if d.Prompt == "" {
		return nil, fmt.Errorf("node %q: prompt is empty", ec.Node.ID)
	}

	var messages []gateway.Message
	if d.System != "" {
		messages = append(messages, gateway.Message{Role: gateway.RoleSystem, Content: ec.Render(d.System)})
	}
	messages = append(messages, gateway.Message{Role: gateway.RoleUser, Content: ec.Render(d.Prompt)})

	resp, err := k.completer.Complete(ctx, &gateway.CompletionRequest{
		Model:           d.Model,
		Messages:        messages,
		Temperature:     d.Temperature,
		TopP:            d.TopP,
		MaxTokens:       d.MaxTokens,
		ReasoningEffort: d.ReasoningEffort,
	})
	if err != nil {
		return nil, err
	}

	content := resp.Content()
	out := &EvalOutput{Value: content, Response: content}
	if d.OutputVariable != "" {
		out.EnvWrites = map[string]string{d.OutputVariable: content}
	}
	return out, nil
}

// variableKind publishes one templated value into the derived variables.
type variableKind struct{}

type variableData struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (k *variableKind) Kind() string      { return "variable" }
func (k *variableKind) StopOnError() bool { return false }

func (k *variableKind) Evaluate(_ context.Context, ec *EvalContext) (*EvalOutput, error) {
	var d variableData
	if err := decodeData(ec.Node, &d); err != nil {
		return nil, err
	}
	if d.Name == "" {
		return nil, fmt.Errorf("node %q: variable name is empty", ec.Node.ID)
	}

	value := ec.Render(d.Value)
	return &EvalOutput{
		Value:     value,
		EnvWrites: map[string]string{d.Name: value},
	}, nil
}

// templateKind renders a text template, optionally publishing the result.
type templateKind struct{}

type templateData struct {
	Label          string `json:"label"`
	Template       string `json:"template"`
	OutputVariable string `json:"outputVariable"`
}

func (k *templateKind) Kind() string      { return "template" }
func (k *templateKind) StopOnError() bool { return false }

func (k *templateKind) Evaluate(_ context.Context, ec *EvalContext) (*EvalOutput, error) {
	var d templateData
	if err := decodeData(ec.Node, &d); err != nil {
		return nil, err
	}

	text := ec.Render(d.Template)
	out := &EvalOutput{Value: text, Text: text}
	if d.OutputVariable != "" {
		out.EnvWrites = map[string]string{d.OutputVariable: text}
	}
	return out, nil
}

// reportKind publishes rendered content under a canonical report name, the
// convention the dispatcher's report extraction reads after the run.
type reportKind struct{}

type reportData struct {
	Label      string `json:"label"`
	ReportName string `json:"reportName"`
	Source     string `json:"source"`
}

func (k *reportKind) Kind() string      { return "report" }
func (k *reportKind) StopOnError() bool { return false }

func (k *reportKind) Evaluate(_ context.Context, ec *EvalContext) (*EvalOutput, error) {
	var d reportData
	if err := decodeData(ec.Node, &d); err != nil {
		return nil, err
	}
	if d.ReportName == "" {
		return nil, fmt.Errorf("node %q: reportName is empty", ec.Node.ID)
	}

	content := ec.Render(d.Source)
	if content == "" {
		return nil, fmt.Errorf("node %q: report %q resolved to empty content", ec.Node.ID, d.ReportName)
	}
	return &EvalOutput{
		Value:     content,
		EnvWrites: map[string]string{d.ReportName: content},
	}, nil
}

// assertKind fails the run when a rendered value does not meet its
// expectation. It is the stock stop-on-error kind: wiring it after a
// critical node turns that node's bad output into a halted run.
type assertKind struct{}

type assertData struct {
	Label   string  `json:"label"`
	Value   string  `json:"value"`
	Equals  *string `json:"equals"`
	Message string  `json:"message"`
}

func (k *assertKind) Kind() string      { return "assert" }
func (k *assertKind) StopOnError() bool { return true }

func (k *assertKind) Evaluate(_ context.Context, ec *EvalContext) (*EvalOutput, error) {
	var d assertData
	if err := decodeData(ec.Node, &d); err != nil {
		return nil, err
	}

	resolved := ec.Render(d.Value)
	failed := resolved == ""
	if d.Equals != nil {
		failed = resolved != *d.Equals
	}
	if failed {
		msg := d.Message
		if msg == "" {
			msg = fmt.Sprintf("assertion failed: value %q", resolved)
		}
		return nil, fmt.Errorf("node %q: %s", ec.Node.ID, msg)
	}

	return &EvalOutput{Value: resolved}, nil
}
