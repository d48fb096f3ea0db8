package cli

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nobunaga0709/sticker-habit/internal/app"
	"github.com/nobunaga0709/sticker-habit/internal/backup"
	"github.com/nobunaga0709/sticker-habit/internal/catalog"
	"github.com/nobunaga0709/sticker-habit/internal/models"
	"github.com/nobunaga0709/sticker-habit/internal/storage"
)

type Context struct {
	Provider storage.Provider
	Catalog  *catalog.Catalog
}

// OpenStore loads the state file into an application store.
func (c *Context) OpenStore() (*app.Store, error) {
	return app.Open(c.Provider, c.Catalog)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Provider.Path())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		log.WithError(err).Warn("automatic backup failed")
	}
}

// resolveHabit matches ref against habit IDs first, then unique names.
func resolveHabit(store *app.Store, ref string) (models.Habit, error) {
	if h, err := store.Habit(ref); err == nil {
		return h, nil
	}

	var matches []models.Habit
	for _, h := range store.Habits() {
		if strings.EqualFold(h.Name, ref) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("habit name %q is ambiguous, use the ID instead", ref)
	}
}

func rarityLabel(r models.Rarity) string {
	switch r {
	case models.RarityNormal:
		return "normal"
	case models.RarityRare:
		return "rare ★"
	case models.RaritySuperRare:
		return "super rare ★★"
	default:
		return string(r)
	}
}
