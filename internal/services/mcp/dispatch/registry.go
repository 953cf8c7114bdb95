package dispatch

import (
	"context"

	"github.com/okulweb/github-mcp/internal/platform/errors"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

// Handler executes one operation against validated params and returns the
// raw result to be normalized. A string result is emitted as raw text;
// anything else is JSON-encoded.
type Handler func(ctx context.Context, params schema.Values) (any, error)

// Operation describes one named, schema-validated operation. Descriptors are
// immutable once registered.
type Operation struct {
	Name        string
	Description string
	Schema      schema.Schema
	Handler     Handler
}

// Registry maps operation names to their descriptors. It is append-only
// during startup and read-only afterwards, so concurrent lookups need no
// synchronization.
type Registry struct {
	order []string
	ops   map[string]Operation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds an operation descriptor. Registering a duplicate name is a
// startup-fatal error.
func (r *Registry) Register(op Operation) error {
	if op.Name == "" {
		return errors.New(errors.CodeStartupFailure, "operation name is empty")
	}
	if op.Handler == nil {
		return errors.Newf(errors.CodeStartupFailure, "operation %q has no handler", op.Name)
	}
	if _, exists := r.ops[op.Name]; exists {
		return errors.Newf(errors.CodeStartupFailure, "operation %q is already registered", op.Name)
	}
	r.ops[op.Name] = op
	r.order = append(r.order, op.Name)
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return Operation{}, errors.Newf(errors.CodeOperationNotFound, "unknown operation %q", name)
	}
	return op, nil
}

// Operations enumerates descriptors in registration order for capability
// discovery. Order carries no execution significance.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name])
	}
	return out
}
