package cli

import (
	"errors"
	"fmt"

	"habitflow/internal/storage"
)

type MigrateCmd struct{}

// Run rewrites the stored profile into the current schema. Loading already
// migrates every record; saving persists the migrated shape so future loads
// skip the legacy paths.
func (c *MigrateCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.LoadProfile(ctx.Config.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No stored profile to migrate.")
			return nil
		}
		return err
	}

	if err := ctx.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Migrated profile with %d habits and %d day records.\n", len(profile.Habits), len(profile.History))
	return nil
}
