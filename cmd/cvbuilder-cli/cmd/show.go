package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cvbuilder/internal/adapters/filesystem"
	"cvbuilder/internal/application"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the résumé",
	Long: `Print the résumé as plain text (sections in the file's order), YAML or JSON.

Examples:
  cvbuilder-cli show
  cvbuilder-cli show --format json -f cv.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResume(cmd, GetWorkspace().Current(), showFormat)
	},
}

func printResume(cmd *cobra.Command, r application.Resume, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "text", "":
		fmt.Fprint(out, application.PlainText(r))
		return nil
	case "yaml", "json":
		return filesystem.Encode(out, r, filesystem.Format(format))
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "text", "output format: text, yaml or json")
	rootCmd.AddCommand(showCmd)
}
