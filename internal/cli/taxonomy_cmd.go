package cli

import (
	"fmt"

	"esgcompass/internal/cli/formatter"
	"esgcompass/internal/importer"
	"esgcompass/internal/taxonomy"

	"github.com/spf13/cobra"
)

func newTaxonomyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect and build the field taxonomy",
	}

	cmd.AddCommand(
		newTaxonomyStatsCmd(app),
		newTaxonomyContextCmd(app),
		newTaxonomyProcessCmd(app),
	)

	return cmd
}

func newTaxonomyStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show taxonomy counts and pillars",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTaxonomy(app); err != nil {
				return err
			}
			out := formatter.FormatStats(app.Store.Stats(), app.Hierarchy.Summary(),
				app.Store.Version, app.Store.Source)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newTaxonomyContextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "context FIELD_ID",
		Short: "Show a field's place in the hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTaxonomy(app); err != nil {
				return err
			}
			if _, ok := app.Store.Get(args[0]); !ok {
				return fmt.Errorf("field not found: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Matcher.FieldContext(args[0]))
			return nil
		},
	}
}

func newTaxonomyProcessCmd(app *App) *cobra.Command {
	var outPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "process CSV...",
		Short: "Build a taxonomy file from vendor CSV exports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, results, err := importer.ProcessCSVs(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if errs := importer.ValidateFields(file.Fields); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", formatter.StyleYellow.Render("warning:"), e)
				}
				if strict {
					return fmt.Errorf("%d validation problems", len(errs))
				}
			}

			if err := taxonomy.WriteFile(outPath, file); err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatProcessResults(results, file.TotalFields))
			fmt.Fprintf(out, "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "esg_taxonomy.json", "Output taxonomy file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on validation warnings")

	return cmd
}
