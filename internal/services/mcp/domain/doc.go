// Package domain translates MCP tool invocations into GitHub API calls.
//
// The package is intentionally explicit about that mapping:
// - declare each operation's input schema with its defaults and bounds,
// - delegate the network call to the provider,
// - and project the provider's raw result down to the fields MCP clients
//   should see.
//
// This keeps behavior auditable from protocol message -> provider call ->
// projected response.
package domain
