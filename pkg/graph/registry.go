package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/assessflow/pipeline/pkg/models"
)

// EvalContext is what one node evaluation sees: its own node, the results
// of its predecessors, and read access to the derived variables map and
// the frozen globals snapshot.
type EvalContext struct {
	Node      Node
	Inputs    map[string]models.NodeResult
	Variables map[string]string
	Globals   map[string]models.Variable

	unresolved []string
}

// Render resolves `{{name}}` placeholders against the derived variables,
// accumulating unresolved names for the run's warning counter.
func (ec *EvalContext) Render(template string) string {
	out, missing := Resolve(template, ec.Variables)
	ec.unresolved = append(ec.unresolved, missing...)
	return out
}

// Unresolved returns the placeholder names Render could not satisfy.
func (ec *EvalContext) Unresolved() []string {
	return ec.unresolved
}

// EvalOutput is the successful result of one node evaluation. EnvWrites
// publish into the run's derived variables map after the node terminates.
type EvalOutput struct {
	Value     interface{}
	Text      string
	Response  string
	EnvWrites map[string]string
}

// Evaluator evaluates all nodes of one kind. Implementations must be safe
// for concurrent calls; the executor runs several nodes at once.
type Evaluator interface {
	// Kind is the node.type tag this evaluator serves.
	Kind() string

	// StopOnError reports the kind's failure policy: when true, a failed
	// node halts further dispatch and the run finalizes as failed.
	StopOnError() bool

	// Evaluate runs one node. Errors are recorded on the node result and,
	// unless StopOnError, do not affect the rest of the run.
	Evaluate(ctx context.Context, ec *EvalContext) (*EvalOutput, error)
}

// Registry maps node.type tags to evaluators. Kinds are registered during
// startup; lookups are concurrent.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Evaluator
}

// NewRegistry creates an empty node-kind registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Evaluator)}
}

// Register adds an evaluator, replacing any previous one for the kind.
func (r *Registry) Register(e Evaluator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[e.Kind()] = e
}

// Lookup returns the evaluator for a node.type tag.
func (r *Registry) Lookup(kind string) (Evaluator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("no evaluator registered for node kind %q", kind)
	}
	return e, nil
}

// Kinds returns the registered kind tags.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.kinds))
	for kind := range r.kinds {
		out = append(out, kind)
	}
	return out
}
