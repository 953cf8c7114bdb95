package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	githubapi "github.com/okulweb/github-mcp/internal/platform/github"
	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/domain"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "GitHub MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config configures the MCP server.
type Config struct {
	// Token is the GitHub personal access token for all API calls.
	Token string
	// APIBaseURL points the server at a GitHub Enterprise installation.
	// Empty means api.github.com.
	APIBaseURL string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer  *mcp.Server
	dispatcher *dispatch.Dispatcher
}

// New creates a configured MCP server backed by the GitHub REST API.
func New(cfg Config) (*Server, error) {
	client, err := githubapi.NewClient(githubapi.Config{Token: cfg.Token, APIBaseURL: cfg.APIBaseURL})
	if err != nil {
		return nil, fmt.Errorf("build github client: %w", err)
	}
	return newServer(client)
}

// newServer builds the operation catalogue once and binds every operation to
// an MCP tool. All tool calls flow through the same dispatcher; there is no
// per-operation transport code.
func newServer(provider domain.Provider) (*Server, error) {
	registry := dispatch.NewRegistry()
	for _, module := range newRegistrationModules(provider) {
		if err := module.register(registry); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}
	dispatcher := dispatch.NewDispatcher(registry)

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	for _, op := range registry.Operations() {
		bindOperation(mcpServer, dispatcher, op)
	}
	return &Server{mcpServer: mcpServer, dispatcher: dispatcher}, nil
}

// bindOperation registers one catalogue operation as an MCP tool. The bound
// handler delegates to the dispatcher and always returns a result envelope;
// operation failures never become protocol errors.
func bindOperation(server *mcp.Server, dispatcher *dispatch.Dispatcher, op dispatch.Operation) {
	tool := &mcp.Tool{
		Name:        op.Name,
		Description: op.Description,
		InputSchema: op.Schema.JSONSchema(),
	}
	server.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return dispatcher.Dispatch(ctx, req.Params.Name, req.Params.Arguments), nil
	})
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path and is not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
