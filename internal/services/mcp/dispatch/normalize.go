package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Normalize converts a handler's raw result into the uniform response
// envelope: exactly one text content block.
//
// String results pass through as raw text. This is deliberate: the
// file-contents operation returns decoded file text, and that text must not
// be JSON-wrapped. Every other result is a projected struct or slice and is
// rendered as indented JSON whose field order follows struct declaration
// order, keeping output deterministic.
func Normalize(result any) (*mcp.CallToolResult, error) {
	text, ok := result.(string)
	if !ok {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		text = string(data)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}
