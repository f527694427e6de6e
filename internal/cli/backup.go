package cli

import (
	"fmt"

	"habitflow/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if ctx.Config.IsPostgres() {
		return fmt.Errorf("backups are only supported for file-backed stores")
	}

	manager := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := manager.Create()
	if err != nil {
		return err
	}

	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	if ctx.Config.IsPostgres() {
		return fmt.Errorf("backups are only supported for file-backed stores")
	}

	manager := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := manager.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if ctx.Config.IsPostgres() {
		return fmt.Errorf("backups are only supported for file-backed stores")
	}

	manager := backup.NewManager(ctx.Store.GetConfigPath())
	if err := manager.Restore(c.Path); err != nil {
		return err
	}

	fmt.Printf("Restored from %s\n", c.Path)
	fmt.Println("(The previous store was backed up first)")
	return nil
}
