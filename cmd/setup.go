package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/servicecordiale/cordiale/internal/catalog"
	"github.com/servicecordiale/cordiale/internal/config"
	"github.com/servicecordiale/cordiale/internal/logging"
	"github.com/servicecordiale/cordiale/internal/store"
	"github.com/servicecordiale/cordiale/internal/theme"
)

// env is what every command needs once flags and environment are resolved.
type env struct {
	cfg     config.Config
	log     *logging.Logger
	prefs   store.PreferenceRepo
	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

// loadConfig reads the environment, applies flags explicitly set on the
// command line, and validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath, _ = flags.GetString("catalog")
	}
	if flags.Changed("interval") {
		cfg.Interval, _ = flags.GetDuration("interval")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("ephemeral") {
		cfg.Ephemeral, _ = flags.GetBool("ephemeral")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setup resolves configuration, logging and preference storage.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg}

	log, closer, err := openLogger(cfg)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		e.closers = append(e.closers, closer)
	}
	e.log = log.WithFields(map[string]any{"run_id": uuid.NewString(), "command": cmd.Name()})

	prefs, closer, err := openPreferences(cfg)
	if err != nil {
		e.Close()
		return nil, err
	}
	if closer != nil {
		e.closers = append(e.closers, closer)
	}
	e.prefs = prefs
	return e, nil
}

func openLogger(cfg config.Config) (*logging.Logger, io.Closer, error) {
	path := cfg.LogFile
	if path == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, "cordiale.log")
	}

	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Writer: f})
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("configure logger: %w", err)
	}
	return log, f, nil
}

// openPreferences returns the SQLite-backed store, or the in-memory one
// for ephemeral runs.
func openPreferences(cfg config.Config) (store.PreferenceRepo, io.Closer, error) {
	if cfg.Ephemeral {
		return store.NewMemoryPreferences(), nil, nil
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st.PreferenceRepo(), st, nil
}

// resolveDBPath returns the database path using --db / CORDIALE_DB first,
// then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	return catalog.LoadOrDefault(cfg.CatalogPath)
}

// newTheme builds the theme store and resolves its starting mode.
func newTheme(ctx context.Context, e *env, detector theme.Detector) *theme.Store {
	if detector == nil {
		detector = theme.EnvDetector{}
	}
	th := theme.New(e.prefs, detector, theme.WithLogger(e.log))
	th.Initialize(ctx)
	return th
}
