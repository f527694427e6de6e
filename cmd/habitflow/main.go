package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"habitflow/internal/cli"
	"habitflow/internal/config"
	"habitflow/internal/constants"
	"habitflow/internal/errors"
	"habitflow/internal/logger"
	"habitflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path (.json or .db) or PostgreSQL connection string. Credentials must NOT be embedded in the connection string; use PGUSER/PGPASSWORD, .pgpass, or the OS keyring instead." type:"string"`
	User    string `help:"Profile to operate on." default:""`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's checklist, level, and alerts."`
	Migrate cli.MigrateCmd `cmd:"" help:"Rewrite the stored profile into the current schema."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits and daily completion."`
	Day     cli.DayCmd     `cmd:"" help:"Log notes, sleep, meals, training, and symptoms."`
	Stats   cli.StatsCmd   `cmd:"" help:"Trends, rankings, and completion reports."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Db struct {
		SetDsn   cli.DbSetDsnCmd   `cmd:"" name:"set-dsn" help:"Store a PostgreSQL connection string in the OS keyring."`
		ClearDsn cli.DbClearDsnCmd `cmd:"" name:"clear-dsn" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage the PostgreSQL connection."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit and health tracking dashboard"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg := config.Load()
	if CLI.Config != "" {
		cfg.StorePath = config.ExpandPath(CLI.Config)
	}
	if CLI.User != "" {
		cfg.UserID = CLI.User
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	// With no explicit store configured, a DSN stored in the OS keyring takes
	// precedence over the default JSON file.
	if CLI.Config == "" && os.Getenv("HABITFLOW_STORE") == "" {
		if dsn, err := config.GetConnectionString(); err == nil {
			cfg.StorePath = dsn
		}
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir()}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	var store storage.Provider
	switch {
	case cfg.IsPostgres():
		if storage.HasEmbeddedCredentials(cfg.StorePath) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Use PGUSER/PGPASSWORD environment variables, a .pgpass file,")
			fmt.Fprintf(os.Stderr, "       or store the DSN in the OS keyring: %s db set-dsn <dsn>\n", constants.AppName)
			os.Exit(1)
		}
		store = storage.NewPostgresStore(cfg.StorePath)
	case strings.HasSuffix(cfg.StorePath, ".db"):
		store = storage.NewSQLiteStore(cfg.StorePath)
	default:
		store = storage.NewJSONStore(cfg.StorePath)
	}

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	// Load the store before running the command. Init handles its own loading,
	// and the keyring commands never touch the store.
	command := ctx.Command()
	if !strings.HasPrefix(command, "init") && !strings.HasPrefix(command, "db ") {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		_ = store.Close()
		errors.Fatal(err)
	}
}
