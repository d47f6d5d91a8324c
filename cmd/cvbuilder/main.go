package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/adapters/claudecli"
	"cvbuilder/internal/adapters/editor"
	"cvbuilder/internal/adapters/filesystem"
	"cvbuilder/internal/adapters/tui"
	"cvbuilder/internal/app"
	"cvbuilder/internal/application"
	"cvbuilder/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	seedPath := flag.String("file", cfg.Seed, "résumé file to start from (reloaded when it changes)")
	flag.Parse()

	// the terminal belongs to the UI, so logs only go to log.file
	logger, closeLog, err := app.NewLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	repo := filesystem.NewRepository()
	seed, err := repo.Load(*seedPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Info("seed file not found, starting empty", "path", *seedPath)
		seed = application.NewResume()
	case err != nil:
		return err
	}

	ws := application.NewWorkspace(seed, logger)
	ws.SetLayout(cfg.InitialLayout())

	opts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithEditor(editor.NewOpener()),
	}

	assistant := claudecli.NewAssistant(
		claudecli.WithModel(cfg.AI.Model),
		claudecli.WithBinary(cfg.AI.Binary),
	)
	if assistant.IsAvailable() {
		opts = append(opts, tui.WithSummaryWriter(assistant, cfg.Lang))
	} else {
		logger.Warn("claude CLI not found, AI summary disabled", "binary", cfg.AI.Binary)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := filesystem.NewWatcher(*seedPath, logger)
	if err != nil {
		logger.Warn("seed reload disabled", "error", err)
	} else {
		defer watcher.Close()
		changes := make(chan struct{})
		go func() {
			if err := watcher.Run(ctx, changes); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("seed watcher stopped", "error", err)
			}
		}()
		opts = append(opts, tui.WithSeedReload(repo, watcher.Path(), changes))
	}

	p := tea.NewProgram(tui.NewApp(ws, opts...), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
