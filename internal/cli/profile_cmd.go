package cli

import (
	"context"
	"fmt"
	"os"

	"esgcompass/internal/cli/formatter"
	"esgcompass/internal/db"
	"esgcompass/internal/repository"
	"esgcompass/internal/tracker"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved preference profiles",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileExportCmd(app),
		newProfileImportCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProfiles(app); err != nil {
				return err
			}
			infos, err := app.Profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfileList(infos))
			return nil
		},
	}
}

func newProfileExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export NAME FILE",
		Short: "Export a profile's priorities as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProfiles(app); err != nil {
				return err
			}
			profile, err := app.Profiles.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := tracker.FromRecord(profile.Entries).SaveFile(args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %q (%d fields) to %s\n",
				profile.Name, len(profile.Entries), args[1])
			return nil
		},
	}
}

func newProfileImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import NAME FILE",
		Short: "Import a priorities JSON file as a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProfiles(app); err != nil {
				return err
			}
			t, err := tracker.LoadFile(args[1])
			if err != nil {
				return err
			}

			profile := &repository.StoredProfile{
				Name:    args[0],
				Entries: t.ToRecord(),
			}
			err = app.UOW.WithinTx(cmd.Context(), func(ctx context.Context, tx db.DBTX) error {
				return repository.NewSQLiteProfileRepo(tx).Save(ctx, profile)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q (%d fields)\n", args[0], t.Len())
			return nil
		},
	}
}

func newProfileRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProfiles(app); err != nil {
				return err
			}
			if !force && isatty.IsTerminal(os.Stdin.Fd()) {
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete profile %q?", args[0])).
						Value(&confirmed),
				)).WithTheme(compassHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil || !confirmed {
					return nil
				}
			}

			if err := app.Profiles.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed profile %q\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
