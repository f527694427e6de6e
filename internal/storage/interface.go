package storage

import (
	"errors"

	"habitflow/internal/models"
)

// ErrNotFound is returned when no profile is stored for a user.
var ErrNotFound = errors.New("profile not found")

// Provider persists whole profiles. Saves are last-writer-wins at profile
// granularity; a stored profile of any prior schema version is migrated into
// the current shape on load.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profiles
	LoadProfile(userID string) (models.Profile, error)
	SaveProfile(userID string, profile models.Profile) error

	// Utils
	GetConfigPath() string
}
