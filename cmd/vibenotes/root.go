package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vibecoding/vibenotes/internal/config"
	"github.com/vibecoding/vibenotes/internal/insight"
	"github.com/vibecoding/vibenotes/internal/logging"
	"github.com/vibecoding/vibenotes/internal/search"
	"github.com/vibecoding/vibenotes/internal/storage"
	"github.com/vibecoding/vibenotes/internal/store"
)

var (
	configFile string
	dataDir    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vibenotes",
	Short: "A local-first note and todo manager",
	Long: `Vibenotes keeps quick notes and todos in a single local database.
Notes carry tags, an optional todo state with Eisenhower priorities,
and can be searched, filtered, summarized, exported and imported.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for the note database (overrides config)")
}

// app bundles everything a command needs: the resolved config, the open
// database and the loaded store plus its derived views.
type app struct {
	cfg     *config.Config
	db      *storage.SQLiteStore
	store   *store.Store
	engine  *search.Engine
	insight *insight.Extractor
}

// newApp resolves configuration, opens the database and loads the note
// collection. Callers must close the returned app.
func newApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	logging.Init(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	db, err := storage.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	st := store.New(db, nil)
	if err := st.Load(); err != nil {
		db.Close()
		return nil, err
	}

	ext := insight.New(nil)
	ext.Bind(st)

	return &app{
		cfg:     cfg,
		db:      db,
		store:   st,
		engine:  search.New(nil),
		insight: ext,
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		logging.Warn("failed to close database", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// theme returns the active palette: the persisted preference when one
// exists, otherwise the configured fallback.
func (a *app) theme() Theme {
	name := a.store.Theme()
	if name == "" {
		name = a.cfg.Theme
	}
	if name == "dark" {
		return Dark
	}
	return Light
}
