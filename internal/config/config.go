package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"habitflow/internal/constants"
)

// Config is the resolved application configuration. Values come from, in
// order of precedence: environment variables, a .env file in the working
// directory, then built-in defaults.
type Config struct {
	// StorePath is a file path (.json or .db) or a postgres:// DSN.
	StorePath string
	UserID    string
	Debug     bool
}

// Load resolves the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		StorePath: constants.DefaultConfigPath,
		UserID:    constants.DefaultUserID,
	}

	if v := os.Getenv("HABITFLOW_STORE"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("HABITFLOW_USER"); v != "" {
		cfg.UserID = v
	}
	switch strings.ToLower(os.Getenv("HABITFLOW_DEBUG")) {
	case "1", "true", "yes":
		cfg.Debug = true
	}

	cfg.StorePath = ExpandPath(cfg.StorePath)
	return cfg
}

// IsPostgres reports whether the store path is a PostgreSQL connection string.
func (c Config) IsPostgres() bool {
	return strings.HasPrefix(c.StorePath, "postgres://") ||
		strings.HasPrefix(c.StorePath, "postgresql://")
}

// ConfigDir returns the directory holding the store file, used for logs and
// backups. For a PostgreSQL DSN the default config directory is used.
func (c Config) ConfigDir() string {
	if c.IsPostgres() {
		return filepath.Dir(ExpandPath(constants.DefaultConfigPath))
	}
	return filepath.Dir(c.StorePath)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
