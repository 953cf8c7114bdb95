package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dispatcher runs the generic invocation sequence for every operation:
// decode raw arguments, look up the descriptor, validate input, invoke the
// handler, normalize the result. Failures at any step become error envelopes
// on the same connection; the dispatcher never crashes the process and never
// closes the stream. It imposes no timeout and no concurrency limit of its
// own; invocations are independent and share no mutable state.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over a populated registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch executes one invocation and always returns a well-formed result
// envelope. Error information travels inside the envelope so callers can see
// the failure; it is never surfaced as a protocol-level error.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs json.RawMessage) *mcp.CallToolResult {
	op, err := d.registry.Lookup(name)
	if err != nil {
		return errorResult(err)
	}

	raw := map[string]any{}
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &raw); err != nil {
			return errorResult(fmt.Errorf("decode arguments: %w", err))
		}
	}

	params, err := op.Schema.Validate(raw)
	if err != nil {
		return errorResult(err)
	}

	result, err := op.Handler(ctx, params)
	if err != nil {
		return errorResult(err)
	}

	envelope, err := Normalize(result)
	if err != nil {
		return errorResult(err)
	}
	return envelope
}

// errorResult wraps a failure into the protocol error envelope.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
