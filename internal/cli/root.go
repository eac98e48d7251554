package cli

import (
	"context"
	"fmt"

	"esgcompass/internal/advisor"
	"esgcompass/internal/db"
	"esgcompass/internal/llm"
	"esgcompass/internal/matcher"
	"esgcompass/internal/repository"
	"esgcompass/internal/router"
	"esgcompass/internal/taxonomy"

	"github.com/spf13/cobra"
)

// App holds the wired components all CLI commands work against.
// Client is nil when no language model is configured; everything
// except narrative generation works without it.
type App struct {
	Store     *taxonomy.Store
	Hierarchy *taxonomy.Hierarchy
	Matcher   *matcher.Matcher
	Discovery *advisor.DiscoveryService
	Profiles  repository.ProfileRepo
	UOW       db.UnitOfWork
	Client    llm.LLMClient

	// TaxonomyErr holds the taxonomy load failure, if any. Commands
	// that need the store surface it; "taxonomy process" works without.
	TaxonomyErr error
}

// NewRootCmd creates the top-level "esgcompass" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "esgcompass",
		Short: "ESG preference discovery through conversation",
	}

	root.AddCommand(
		newChatCmd(app),
		newMatchCmd(app),
		newTaxonomyCmd(app),
		newReportCmd(app),
		newProfileCmd(app),
	)

	return root
}

// saveProfile persists a session's captured priorities under a name,
// atomically with its priority rows.
func saveProfile(ctx context.Context, app *App, name string, sess *router.Session) error {
	profile := &repository.StoredProfile{
		Name:      name,
		SessionID: sess.ID,
		Entries:   sess.Priorities.ToRecord(),
	}
	return app.UOW.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProfileRepo(tx).Save(ctx, profile)
	})
}

// sessionReport joins the session's tracker against the taxonomy.
func sessionReport(app *App, sess *router.Session) advisor.Report {
	return advisor.BuildReport(sess.Priorities, app.Store, sess.Progress())
}

func requireTaxonomy(app *App) error {
	if app.Store == nil {
		if app.TaxonomyErr != nil {
			return app.TaxonomyErr
		}
		return fmt.Errorf("no taxonomy loaded")
	}
	return nil
}

func requireProfiles(app *App) error {
	if app.Profiles == nil || app.UOW == nil {
		return fmt.Errorf("profile storage is not configured")
	}
	return nil
}
