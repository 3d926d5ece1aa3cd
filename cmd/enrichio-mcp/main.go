package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "enrichio/internal/adapters/mcp"
	"enrichio/internal/config"
	"enrichio/internal/logging"
	"enrichio/internal/session"
)

func main() {
	_ = godotenv.Load()

	configFlag := flag.String("config", config.Path(), "path to the config file")
	dbFlag := flag.String("db", "", "path to the database (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("enrichio-mcp: %v", err)
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}

	// stdout carries the protocol; logs go to stderr or the configured file
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("enrichio-mcp: %v", err)
	}

	s, err := session.Open(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("enrichio-mcp: %v", err)
	}
	defer s.Close()

	mcpServer := server.NewMCPServer(
		"enrichio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	deps := mcpadapter.Deps{
		Workspace:  s.Workspace,
		Classifier: s.Classifier,
		Sectors:    s.Store,
		Exporter:   s.Exporter,
	}
	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
		log.Fatalf("enrichio-mcp: %v", err)
	}
}
