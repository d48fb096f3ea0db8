// Package app holds the aggregate root: every mutating operation runs
// against the in-memory state, persists the resulting snapshot, and
// only then commits it, so readers never observe a half-updated state
// and a failed save leaves no trace.
package app

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nobunaga0709/sticker-habit/internal/catalog"
	"github.com/nobunaga0709/sticker-habit/internal/constants"
	"github.com/nobunaga0709/sticker-habit/internal/gacha"
	"github.com/nobunaga0709/sticker-habit/internal/habits"
	"github.com/nobunaga0709/sticker-habit/internal/models"
	"github.com/nobunaga0709/sticker-habit/internal/storage"
	"github.com/nobunaga0709/sticker-habit/internal/ticket"
)

// Store composes the catalog, the draw engine, the ticket ledger and
// the habit tracker behind the five public operations the UI calls. It
// is the only writer of the persisted snapshot. The tick scheduler
// runs on the cron goroutine while the TUI loop issues draws and
// completions, so every operation serializes on the store's mutex.
type Store struct {
	mu       sync.Mutex
	provider storage.Provider
	cat      *catalog.Catalog
	engine   *gacha.Engine
	state    models.AppState
}

// Open loads the last-saved snapshot from the provider and wires up the
// engine with a time-seeded random source.
func Open(provider storage.Provider, cat *catalog.Catalog) (*Store, error) {
	return OpenWithEngine(provider, cat, gacha.New(cat))
}

// OpenWithEngine is Open with a caller-supplied draw engine, used by
// tests to inject a deterministic random source.
func OpenWithEngine(provider storage.Provider, cat *catalog.Catalog, engine *gacha.Engine) (*Store, error) {
	state, err := provider.Load()
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return &Store{
		provider: provider,
		cat:      cat,
		engine:   engine,
		state:    state,
	}, nil
}

// Catalog returns the sticker catalog.
func (s *Store) Catalog() *catalog.Catalog {
	return s.cat
}

// State returns a deep copy of the current snapshot.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// commit persists the candidate snapshot and swaps it in on success.
func (s *Store) commit(next models.AppState) error {
	if err := s.provider.Save(next); err != nil {
		return &PersistenceError{Err: err}
	}
	s.state = next
	return nil
}

// DrawReward spends one ticket on a gacha draw and appends the new
// owned sticker. When the catalog is exhausted the ticket is not
// consumed.
func (s *Store) DrawReward(now time.Time) (models.OwnedSticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := ticket.NewLedger(s.state.Ticket)
	if !ledger.CanDraw() {
		return models.OwnedSticker{}, ticket.ErrNoTickets
	}

	sticker, err := s.engine.Draw(s.ownedIDSet())
	if err != nil {
		return models.OwnedSticker{}, err
	}

	if err := ledger.ConsumeForDraw(now); err != nil {
		return models.OwnedSticker{}, err
	}

	owned := models.OwnedSticker{
		ID:         uuid.New().String(),
		StickerID:  sticker.ID,
		AcquiredAt: now,
	}

	next := s.state.Clone()
	next.OwnedStickers = append(next.OwnedStickers, owned)
	next.Ticket = ledger.Snapshot()
	if err := s.commit(next); err != nil {
		return models.OwnedSticker{}, err
	}
	return owned, nil
}

// CompleteHabit marks a habit done for today, spending the chosen
// unused owned sticker. Which sticker to spend is the caller's choice;
// the contract here is only that it must exist and be unused.
func (s *Store) CompleteHabit(habitID, ownedStickerID string, now time.Time) (models.CompletionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ownedIdx := -1
	for i, owned := range s.state.OwnedStickers {
		if owned.ID == ownedStickerID {
			ownedIdx = i
			break
		}
	}
	if ownedIdx < 0 || s.state.OwnedStickers[ownedIdx].IsUsed {
		return models.CompletionRecord{}, ErrNoStickerAvailable
	}

	tracker := habits.NewTracker(s.state.Habits, s.state.Records)
	date := now.Local().Format(constants.DateFormat)
	record, err := tracker.RecordCompletion(habitID, ownedStickerID, s.state.OwnedStickers[ownedIdx].StickerID, date, now)
	if err != nil {
		return models.CompletionRecord{}, err
	}

	next := s.state.Clone()
	next.OwnedStickers[ownedIdx].IsUsed = true
	next.Habits = tracker.Habits()
	next.Records = tracker.Records()
	if err := s.commit(next); err != nil {
		return models.CompletionRecord{}, err
	}
	return record, nil
}

// AddHabit creates a habit.
func (s *Store) AddHabit(name, icon, color string, now time.Time) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracker := habits.NewTracker(s.state.Habits, s.state.Records)
	habit, err := tracker.Add(name, icon, color, now)
	if err != nil {
		return models.Habit{}, err
	}

	next := s.state.Clone()
	next.Habits = tracker.Habits()
	if err := s.commit(next); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// RemoveHabit deletes a habit and all of its completion records.
func (s *Store) RemoveHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracker := habits.NewTracker(s.state.Habits, s.state.Records)
	if err := tracker.Remove(id); err != nil {
		return err
	}

	next := s.state.Clone()
	next.Habits = tracker.Habits()
	next.Records = tracker.Records()
	return s.commit(next)
}

// Tick runs the daily ticket-grant check. It persists only when a
// grant actually fired.
func (s *Store) Tick(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := ticket.NewLedger(s.state.Ticket)
	if !ledger.GrantDailyIfDue(now) {
		return nil
	}

	next := s.state.Clone()
	next.Ticket = ledger.Snapshot()
	return s.commit(next)
}

// Habit looks up one habit.
func (s *Store) Habit(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tracker := habits.NewTracker(s.state.Habits, s.state.Records)
	return tracker.Get(id)
}

// Habits returns the habit list.
func (s *Store) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Habit, len(s.state.Habits))
	copy(out, s.state.Habits)
	return out
}

// OwnedStickers returns every owned sticker, oldest first.
func (s *Store) OwnedStickers() []models.OwnedSticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownedSorted()
}

// UnusedStickers returns owned stickers not yet spent, oldest first.
func (s *Store) UnusedStickers() []models.OwnedSticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.OwnedSticker
	for _, owned := range s.ownedSorted() {
		if !owned.IsUsed {
			out = append(out, owned)
		}
	}
	return out
}

// ownedSorted copies the owned stickers oldest first. Callers hold the
// mutex.
func (s *Store) ownedSorted() []models.OwnedSticker {
	out := make([]models.OwnedSticker, len(s.state.OwnedStickers))
	copy(out, s.state.OwnedStickers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AcquiredAt.Before(out[j].AcquiredAt)
	})
	return out
}

// TicketCount returns the current number of draw credits.
func (s *Store) TicketCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Ticket.Count
}

// RecordsOn returns the completion records for one calendar day.
func (s *Store) RecordsOn(date string) []models.CompletionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	tracker := habits.NewTracker(s.state.Habits, s.state.Records)
	return tracker.RecordsOn(date)
}

// HasCompletionOn reports whether a habit is done on the given day.
func (s *Store) HasCompletionOn(habitID, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	tracker := habits.NewTracker(s.state.Habits, s.state.Records)
	return tracker.HasCompletionOn(habitID, date)
}

// CollectedCount returns how many distinct catalog stickers are owned.
func (s *Store) CollectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ownedIDSet())
}

// ownedIDSet returns the set of distinct catalog ids currently owned.
func (s *Store) ownedIDSet() map[string]bool {
	set := make(map[string]bool, len(s.state.OwnedStickers))
	for _, owned := range s.state.OwnedStickers {
		set[owned.StickerID] = true
	}
	return set
}
