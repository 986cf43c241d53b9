package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/server"
)

func main() {
	// A missing .env is fine; the environment may already be configured.
	_ = godotenv.Load()

	// Stdio transport owns stdout, so logs default to a file.
	log, err := logger.NewLogger(logger.LogConfig{Output: "file"})
	if err != nil {
		panic(err)
	}

	log.Info("Starting deckscout MCP server")

	srv := server.CreateServer(log)
	err = srv.Run(context.Background(), &mcp.StdioTransport{})
	if err != nil {
		log.Fatal("Server failed: %v", err)
	}
}
