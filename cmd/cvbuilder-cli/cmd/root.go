package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cvbuilder/internal/adapters/filesystem"
	"cvbuilder/internal/app"
	"cvbuilder/internal/application"
	"cvbuilder/internal/config"
)

var (
	seedPath  string
	cfg       *config.Config
	logger    *slog.Logger
	workspace *application.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "cvbuilder-cli",
	Short: "Inspect and transform résumé files",
	Long: `cvbuilder-cli works on a résumé seed file (YAML or JSON).

It renders the résumé, reorders its sections, validates the file, and
drafts a professional summary with Claude. The seed file is never
modified; results are printed to stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, _, err = app.NewLogger(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}

		if seedPath == "" {
			seedPath = cfg.Seed
		}

		seed, err := filesystem.NewRepository().Load(seedPath)
		if err != nil {
			return err
		}
		if err := application.ValidateOrder(seed.Order); err != nil {
			return err
		}

		workspace = application.NewWorkspace(seed, logger)
		logger.Debug("seed loaded", "path", seedPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&seedPath, "file", "f", "", "résumé file (default $CVBUILDER_SEED or ~/cv.yaml)")
}

// GetWorkspace returns the workspace holding the loaded résumé
func GetWorkspace() *application.Workspace {
	return workspace
}
