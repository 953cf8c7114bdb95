// Package service hosts the MCP server: it wires the operation catalogue
// into tool registrations and serves the protocol over stdio.
package service
