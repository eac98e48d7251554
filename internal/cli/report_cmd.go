package cli

import (
	"fmt"

	"esgcompass/internal/advisor"
	"esgcompass/internal/cli/formatter"
	"esgcompass/internal/router"
	"esgcompass/internal/tracker"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var filePath string
	var markdown, narrative bool

	cmd := &cobra.Command{
		Use:   "report [PROFILE]",
		Short: "Render a preference report from a saved profile or priorities file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTaxonomy(app); err != nil {
				return err
			}
			var t *tracker.Tracker
			switch {
			case filePath != "":
				var err error
				t, err = tracker.LoadFile(filePath)
				if err != nil {
					return err
				}
			case len(args) == 1:
				if err := requireProfiles(app); err != nil {
					return err
				}
				profile, err := app.Profiles.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				t = tracker.FromRecord(profile.Entries)
			default:
				return fmt.Errorf("a profile name or --file is required")
			}

			// A stored profile carries no agenda position; report it as a
			// finished walk over the current taxonomy's agenda.
			total := len(app.Hierarchy.BuildAgenda())
			progress := router.Progress{Current: total, Total: total, Percentage: 100}
			report := advisor.BuildReport(t, app.Store, progress)

			out := cmd.OutOrStdout()
			if markdown {
				fmt.Fprint(out, report.Markdown())
			} else {
				fmt.Fprintln(out, formatter.FormatReport(report))
			}

			if narrative {
				stopSpinner := thinkingSpinner(app)
				text, err := app.Discovery.Narrative(cmd.Context(), report)
				stopSpinner()
				if err != nil {
					return fmt.Errorf("generating narrative: %w", err)
				}
				if text == "" {
					return fmt.Errorf("narrative generation needs a configured language model")
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Priorities JSON file instead of a saved profile")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Emit the shareable markdown document")
	cmd.Flags().BoolVar(&narrative, "narrative", false, "Add a model-written narrative summary")

	return cmd
}
