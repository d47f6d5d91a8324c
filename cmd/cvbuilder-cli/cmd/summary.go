package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cvbuilder/internal/adapters/claudecli"
	"cvbuilder/internal/application/commands"
)

var (
	summaryApply  bool
	summaryFormat string
	summaryLang   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Draft a professional summary with Claude",
	Long: `Draft a 2-3 sentence professional summary from the filled experience
entries and skills, using the claude CLI.

Without --apply only the summary is printed. With --apply the whole résumé
is printed with the new summary in place.

Examples:
  cvbuilder-cli summary
  cvbuilder-cli summary --lang es --apply --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		lang := summaryLang
		if lang == "" {
			lang = cfg.Lang
		}
		assistant := claudecli.NewAssistant(
			claudecli.WithModel(cfg.AI.Model),
			claudecli.WithBinary(cfg.AI.Binary),
		)

		generate := commands.NewGenerateSummaryCommand(GetWorkspace(), assistant, lang, summaryApply)
		result, err := generate.Execute(ctx)
		if err != nil {
			return err
		}

		if !summaryApply {
			fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
			return nil
		}
		return printResume(cmd, GetWorkspace().Current(), summaryFormat)
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryApply, "apply", false, "print the résumé with the summary applied")
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "yaml", "output format with --apply: text, yaml or json")
	summaryCmd.Flags().StringVar(&summaryLang, "lang", "", "summary language: en or es (default $CVBUILDER_LANG)")
	rootCmd.AddCommand(summaryCmd)
}
