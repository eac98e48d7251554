package main

import (
	"fmt"
	"os"
	"path/filepath"

	"esgcompass/internal/advisor"
	"esgcompass/internal/cli"
	"esgcompass/internal/db"
	"esgcompass/internal/llm"
	"esgcompass/internal/matcher"
	"esgcompass/internal/repository"
	"esgcompass/internal/router"
	"esgcompass/internal/taxonomy"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional; real environment wins over it.
	_ = godotenv.Load()

	taxonomyPath := os.Getenv("ESGCOMPASS_TAXONOMY")
	if taxonomyPath == "" {
		// Prefer a taxonomy in the working directory (development),
		// fall back to ~/.esgcompass (installed).
		if _, err := os.Stat("./esg_taxonomy.json"); err == nil {
			taxonomyPath = "./esg_taxonomy.json"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			taxonomyPath = filepath.Join(home, ".esgcompass", "esg_taxonomy.json")
		}
	}

	dbPath := os.Getenv("ESGCOMPASS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".esgcompass", "esgcompass.db")
	}

	// A missing taxonomy is not fatal here: "taxonomy process" is how
	// the file gets built in the first place. Commands that need the
	// store report the load error themselves.
	var hierarchy *taxonomy.Hierarchy
	var match *matcher.Matcher
	var discovery *advisor.DiscoveryService
	store, taxErr := taxonomy.LoadFile(taxonomyPath)
	if taxErr != nil {
		taxErr = fmt.Errorf("loading taxonomy %s: %w", taxonomyPath, taxErr)
		store = nil
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire the language model only when enabled; everything else
	// degrades to scripted output without it.
	var client llm.LLMClient
	cfg := llm.LoadConfig()
	if cfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewGeminiClient(cfg, observer)
	}

	if store != nil {
		hierarchy = taxonomy.NewHierarchy(store)
		match = matcher.New(store)
		discovery = advisor.NewDiscoveryService(hierarchy, router.New(match), advisor.NewClassifier(client, nil), client)
	}

	app := &cli.App{
		Store:       store,
		Hierarchy:   hierarchy,
		Matcher:     match,
		Discovery:   discovery,
		Profiles:    repository.NewSQLiteProfileRepo(database),
		UOW:         db.NewSQLiteUnitOfWork(database),
		Client:      client,
		TaxonomyErr: taxErr,
	}

	return cli.NewRootCmd(app).Execute()
}
