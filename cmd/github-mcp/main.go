package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/okulweb/github-mcp/internal/cmd/githubmcp"
	"github.com/okulweb/github-mcp/internal/platform/config"
)

// main starts the GitHub MCP server on stdio.
func main() {
	cfg, err := githubmcp.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[MCP] ")

	if err := githubmcp.CheckCredential(cfg); err != nil {
		config.Exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := githubmcp.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
