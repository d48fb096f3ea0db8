package storage

import "github.com/nobunaga0709/sticker-habit/internal/models"

// Provider is the persistence boundary: one full AppState snapshot per
// storage file, loaded once at startup and overwritten after every
// mutating operation. There is exactly one writer (see lockfile), so
// every Save is a last-writer-wins full overwrite, never a merge.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (models.AppState, error)
	Save(models.AppState) error
	Close() error

	// Utils
	Path() string
}
