package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flaskforge/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command, listing available template
// sets.
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available template sets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, set := range templates.List() {
				marker := " "
				if set.Default {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s\n", marker, set.Name, set.Description)
			}
			return nil
		},
	}
}
