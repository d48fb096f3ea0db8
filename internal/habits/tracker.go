package habits

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nobunaga0709/sticker-habit/internal/constants"
	"github.com/nobunaga0709/sticker-habit/internal/models"
)

var (
	// ErrInvalidName means the habit name is empty after trimming or
	// longer than the 30-rune limit.
	ErrInvalidName = errors.New("habit name must be 1-30 characters")
	// ErrNotFound means no habit exists with the given id.
	ErrNotFound = errors.New("habit not found")
	// ErrAlreadyCompleted means the habit already has a completion
	// record for that calendar day.
	ErrAlreadyCompleted = errors.New("habit already completed for this day")
)

// Tracker owns the habit and completion-record collections and keeps
// the cached streak and total-days fields on each habit in sync.
type Tracker struct {
	habits  []models.Habit
	records []models.CompletionRecord
}

// NewTracker wraps existing collections, copying them so the caller's
// slices stay untouched.
func NewTracker(habits []models.Habit, records []models.CompletionRecord) *Tracker {
	t := &Tracker{
		habits:  make([]models.Habit, len(habits)),
		records: make([]models.CompletionRecord, len(records)),
	}
	copy(t.habits, habits)
	copy(t.records, records)
	return t
}

// Habits returns a copy of the habit collection.
func (t *Tracker) Habits() []models.Habit {
	out := make([]models.Habit, len(t.habits))
	copy(out, t.habits)
	return out
}

// Records returns a copy of the completion-record collection.
func (t *Tracker) Records() []models.CompletionRecord {
	out := make([]models.CompletionRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Get looks up a habit by id.
func (t *Tracker) Get(id string) (models.Habit, error) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, ErrNotFound
}

// Add creates a habit after validating its name. The trimmed name must
// be 1-30 runes long.
func (t *Tracker) Add(name, icon, color string, now time.Time) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > constants.MaxHabitNameLen {
		return models.Habit{}, ErrInvalidName
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
	}
	t.habits = append(t.habits, habit)
	return habit, nil
}

// Remove deletes a habit and cascades deletion of all its completion
// records. It fails with ErrNotFound when the habit does not exist.
func (t *Tracker) Remove(id string) error {
	idx := -1
	for i, h := range t.habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	t.habits = append(t.habits[:idx], t.habits[idx+1:]...)

	kept := t.records[:0]
	for _, r := range t.records {
		if r.HabitID != id {
			kept = append(kept, r)
		}
	}
	t.records = kept
	return nil
}

// RecordsFor returns all completion records for one habit.
func (t *Tracker) RecordsFor(habitID string) []models.CompletionRecord {
	var out []models.CompletionRecord
	for _, r := range t.records {
		if r.HabitID == habitID {
			out = append(out, r)
		}
	}
	return out
}

// RecordsOn returns all completion records for one calendar day.
func (t *Tracker) RecordsOn(date string) []models.CompletionRecord {
	var out []models.CompletionRecord
	for _, r := range t.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// HasCompletionOn reports whether a habit has a record for a day.
func (t *Tracker) HasCompletionOn(habitID, date string) bool {
	for _, r := range t.records {
		if r.HabitID == habitID && r.Date == date {
			return true
		}
	}
	return false
}

// RecordCompletion appends a completion record for (habitID, date) and
// refreshes the habit's cached streak and total. The streak is computed
// as of today, the current local calendar day.
func (t *Tracker) RecordCompletion(habitID, ownedStickerID, stickerID, date string, now time.Time) (models.CompletionRecord, error) {
	idx := -1
	for i, h := range t.habits {
		if h.ID == habitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.CompletionRecord{}, ErrNotFound
	}
	if t.HasCompletionOn(habitID, date) {
		return models.CompletionRecord{}, ErrAlreadyCompleted
	}

	record := models.CompletionRecord{
		ID:             uuid.New().String(),
		HabitID:        habitID,
		Date:           date,
		OwnedStickerID: ownedStickerID,
		StickerID:      stickerID,
	}
	t.records = append(t.records, record)

	t.habits[idx].Streak = t.streakAsOf(habitID, now)
	t.habits[idx].TotalDays = len(t.RecordsFor(habitID))

	return record, nil
}

// streakAsOf counts consecutive completed days ending at the current
// day: sort the habit's completion dates descending, then walk back one
// day at a time from today, stopping at the first gap.
func (t *Tracker) streakAsOf(habitID string, now time.Time) int {
	var dates []string
	for _, r := range t.records {
		if r.HabitID == habitID {
			dates = append(dates, r.Date)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	cursor := now.Local()
	for _, date := range dates {
		if date == cursor.Format(constants.DateFormat) {
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}
