package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"cvbuilder/internal/adapters/claudecli"
	"cvbuilder/internal/adapters/filesystem"
	mcpadapter "cvbuilder/internal/adapters/mcp"
	"cvbuilder/internal/app"
	"cvbuilder/internal/application"
	"cvbuilder/internal/config"
	"cvbuilder/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cvbuilder-mcp: %v", err)
	}

	seedFlag := flag.String("file", cfg.Seed, "résumé file to start the session from")
	flag.Parse()

	// stdout carries the MCP protocol, so logs go to stderr
	logger, closeLog, err := app.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("cvbuilder-mcp: %v", err)
	}
	defer closeLog()

	seed, err := filesystem.NewRepository().Load(*seedFlag)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Info("seed file not found, starting empty", "path", *seedFlag)
		seed = application.NewResume()
	case err != nil:
		log.Fatalf("cvbuilder-mcp: %v", err)
	}

	ws := application.NewWorkspace(seed, logger)
	ws.SetLayout(cfg.InitialLayout())

	var writer ports.SummaryWriter
	assistant := claudecli.NewAssistant(
		claudecli.WithModel(cfg.AI.Model),
		claudecli.WithBinary(cfg.AI.Binary),
	)
	if assistant.IsAvailable() {
		writer = assistant
	} else {
		logger.Warn("claude CLI not found, generate_summary disabled", "binary", cfg.AI.Binary)
	}

	session := mcpadapter.NewSession(ws, writer, cfg.Lang)
	mcpServer := mcpadapter.NewServer("cvbuilder-mcp", "0.1.0", session)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("cvbuilder-mcp: %v", err)
	}
}
