package cli

import (
	"errors"

	"habitflow/internal/config"
	"habitflow/internal/logger"
	"habitflow/internal/models"
	"habitflow/internal/storage"
)

// Context is passed to every command's Run method.
type Context struct {
	Store  storage.Provider
	Config config.Config
}

// LoadProfile loads the configured user's profile, falling back to the
// first-run default profile when nothing is stored yet. Stored records pass
// through the schema migrator inside the store.
func (ctx *Context) LoadProfile() (models.Profile, error) {
	profile, err := ctx.Store.LoadProfile(ctx.Config.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Debug("no stored profile, using defaults", "user", ctx.Config.UserID)
			return models.DefaultProfile(), nil
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// SaveProfile persists the whole profile for the configured user.
func (ctx *Context) SaveProfile(profile models.Profile) error {
	return ctx.Store.SaveProfile(ctx.Config.UserID, profile)
}
