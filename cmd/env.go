package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/speechdrill/internal/config"
	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/store"
)

// env is the per-command runtime: configuration, logger and an open store.
type env struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *store.Store
	dbPath string
}

// logMode picks where logs go. The TUI owns the terminal, so it logs to
// a file beside the database unless log.file says otherwise.
type logMode int

const (
	logToStderr logMode = iota
	logToFile
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: file})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the db config key (SPEECHDRILL_DB), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func openEnv(cmd *cobra.Command, mode logMode) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	logFile := cfg.Log.File
	if logFile == "" && mode == logToFile {
		logFile = filepath.Join(filepath.Dir(dbPath), "speechdrill.log")
	}
	log, err := logger.New(logger.Options{Mode: cfg.Log.Mode, File: logFile})
	if err != nil {
		return nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("store opened", "path", dbPath)

	return &env{cfg: cfg, log: log, store: s, dbPath: dbPath}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close database", "error", err)
	}
	e.log.Sync()
}

func (e *env) language() phoneme.Language {
	return phoneme.Language(e.cfg.Practice.Language)
}
