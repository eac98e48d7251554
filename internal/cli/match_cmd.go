package cli

import (
	"fmt"
	"strings"

	"esgcompass/internal/cli/formatter"

	"github.com/spf13/cobra"
)

func newMatchCmd(app *App) *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "match TEXT...",
		Short: "Score free text against the taxonomy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTaxonomy(app); err != nil {
				return err
			}
			text := strings.Join(args, " ")
			matches := app.Matcher.FindMatches(text, topK)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMatchList(matches))
			return nil
		},
	}

	cmd.Flags().IntVar(&topK, "top", 5, "Maximum number of matches to show")

	return cmd
}
