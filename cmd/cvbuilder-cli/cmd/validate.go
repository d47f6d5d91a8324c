package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cvbuilder/internal/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the résumé file and report empty required fields",
	Long: `Check that the résumé file parses and its section order is valid, then
list entries missing the fields the preview relies on. Missing fields are
warnings; the command only fails when the file itself is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		warnings := missingFields(GetWorkspace().Current())

		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		fmt.Fprintf(out, "%s: ok (%d warnings)\n", seedPath, len(warnings))
		return nil
	},
}

// requiredFields lists, per collection, the field an entry is useless without
var requiredFields = map[domain.Collection]string{
	domain.CollectionExperience: "title",
	domain.CollectionEducation:  "degree",
	domain.CollectionCourses:    "name",
	domain.CollectionSkills:     "name",
	domain.CollectionLanguages:  "name",
}

func missingFields(r domain.Resume) []string {
	var warnings []string
	if r.PersonalInfo.Name == "" {
		warnings = append(warnings, "personal.name is empty")
	}
	for _, c := range domain.Collections {
		field := requiredFields[c]
		for i := 0; i < r.EntryCount(c); i++ {
			if v, err := r.EntryField(c, i, field); err == nil && v == "" {
				warnings = append(warnings, fmt.Sprintf("%s[%d].%s is empty", c, i, field))
			}
		}
	}
	return warnings
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
