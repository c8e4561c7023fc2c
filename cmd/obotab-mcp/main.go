package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"obotab/internal/adapters/fetch"
	mcpadapter "obotab/internal/adapters/mcp"
	"obotab/internal/application/commands"
	"obotab/internal/config"
	"obotab/internal/domain"
	"obotab/internal/logger"
)

func main() {
	sourceFlag := flag.String("source", config.Source(), "ontology source (file path or http(s) URL)")
	flag.Parse()

	if err := logger.Init(false); err != nil {
		log.Fatalf("obotab-mcp: %v", err)
	}
	defer logger.Sync()

	resolver := fetch.NewResolver()
	onto, err := commands.Load(resolver, logger.Get(), *sourceFlag)
	if err != nil {
		log.Fatalf("obotab-mcp: %v", err)
	}

	rootID, err := domain.ResolveRoot(onto)
	if err != nil {
		log.Fatalf("obotab-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"obotab-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, onto, rootID)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("obotab-mcp: %v", err)
	}
}
