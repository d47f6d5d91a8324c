package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cvbuilder/internal/application/commands"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Show or change the section order",
	Long: `Show or change the order of the experience, education and courses sections.

Examples:
  cvbuilder-cli order show
  cvbuilder-cli order move 0 2
  cvbuilder-cli order move courses experience`,
}

var orderShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the section order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, k := range GetWorkspace().Current().Order {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", i, k)
		}
		return nil
	},
}

var orderMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a section and print the new order",
	Long: `Move a section to a new position. Positions are 0-based indexes or
section names; a name as <to> means the position that section holds now.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ws := GetWorkspace()

		var move *commands.MoveSectionCommand
		from, errFrom := strconv.Atoi(args[0])
		to, errTo := strconv.Atoi(args[1])
		if errFrom == nil && errTo == nil {
			move = commands.NewMoveSectionCommand(ws, from, to)
		} else {
			var err error
			move, err = commands.NewMoveSectionByKeyCommand(ws, args[0], args[1])
			if err != nil {
				return err
			}
		}

		result, err := move.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderMoveCmd)
	rootCmd.AddCommand(orderCmd)
}
