// Package jobs runs the periodic daily-grant check. The tick fires
// once at startup and then every minute for as long as the session is
// active; the check itself is idempotent within a calendar day.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/nobunaga0709/sticker-habit/internal/app"
	"github.com/nobunaga0709/sticker-habit/internal/constants"
)

// Scheduler owns the cron instance driving Store.Tick.
type Scheduler struct {
	cron  *cron.Cron
	store *app.Store
}

// NewScheduler creates a scheduler over the given store.
func NewScheduler(store *app.Store) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		store: store,
	}
}

// Start runs the startup tick and registers the recurring one.
func (s *Scheduler) Start() error {
	if err := s.store.Tick(time.Now()); err != nil {
		log.WithError(err).Error("startup ticket check failed")
	}

	_, err := s.cron.AddFunc(constants.TickInterval, func() {
		if err := s.store.Tick(time.Now()); err != nil {
			log.WithError(err).Error("ticket check failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Debug("ticket scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Debug("ticket scheduler stopped")
}
