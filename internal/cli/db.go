package cli

import (
	"errors"
	"fmt"
	"strings"

	"habitflow/internal/config"
	"habitflow/internal/storage"
)

type DbSetDsnCmd struct {
	Dsn string `arg:"" help:"Postgres connection string (postgres://host:port/db?sslmode=...)."`
}

func (c *DbSetDsnCmd) Run() error {
	if !strings.HasPrefix(c.Dsn, "postgres://") && !strings.HasPrefix(c.Dsn, "postgresql://") {
		return fmt.Errorf("connection string must start with postgres:// or postgresql://")
	}
	if storage.HasEmbeddedCredentials(c.Dsn) {
		return fmt.Errorf("connection string must not embed credentials; set PGUSER/PGPASSWORD or use .pgpass instead")
	}

	if err := config.SetConnectionString(c.Dsn); err != nil {
		if errors.Is(err, config.ErrKeyringUnavailable) {
			return fmt.Errorf("no OS keyring available on this system: %w", err)
		}
		return err
	}

	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type DbClearDsnCmd struct{}

func (c *DbClearDsnCmd) Run() error {
	if err := config.DeleteConnectionString(); err != nil {
		if errors.Is(err, config.ErrNotFound) {
			fmt.Println("No stored connection string.")
			return nil
		}
		return err
	}

	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
