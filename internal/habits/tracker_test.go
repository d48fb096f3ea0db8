package habits

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nobunaga0709/sticker-habit/internal/constants"
	"github.com/nobunaga0709/sticker-habit/internal/models"
)

func day(now time.Time, offset int) string {
	return now.AddDate(0, 0, offset).Format(constants.DateFormat)
}

func TestAdd_NameValidation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Morning run", false},
		{"trimmed", "  stretch  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"exactly 30 runes", strings.Repeat("a", 30), false},
		{"too long", strings.Repeat("a", 31), true},
		{"multibyte within limit", strings.Repeat("習", 30), false},
		{"multibyte too long", strings.Repeat("習", 31), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker(nil, nil)
			habit, err := tracker.Add(tt.input, "⭐", "#FFE0E6", now)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Fatalf("expected ErrInvalidName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if habit.Name != strings.TrimSpace(tt.input) {
				t.Errorf("expected trimmed name %q, got %q", strings.TrimSpace(tt.input), habit.Name)
			}
			if habit.ID == "" {
				t.Error("expected generated id")
			}
			if habit.Streak != 0 || habit.TotalDays != 0 {
				t.Errorf("expected fresh habit counters at zero, got %d/%d", habit.Streak, habit.TotalDays)
			}
		})
	}
}

func TestRemove_CascadesRecords(t *testing.T) {
	now := time.Now()
	tracker := NewTracker(nil, nil)

	keep, _ := tracker.Add("keep", "⭐", "", now)
	drop, _ := tracker.Add("drop", "🌸", "", now)

	for i := 0; i < 3; i++ {
		if _, err := tracker.RecordCompletion(drop.ID, "us-1", "s001", day(now, -i), now); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	if _, err := tracker.RecordCompletion(keep.ID, "us-2", "s002", day(now, 0), now); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	if err := tracker.Remove(drop.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if got := tracker.RecordsFor(drop.ID); len(got) != 0 {
		t.Errorf("expected no records for removed habit, got %d", len(got))
	}
	if got := tracker.RecordsFor(keep.ID); len(got) != 1 {
		t.Errorf("expected the other habit's records to survive, got %d", len(got))
	}
	if _, err := tracker.Get(drop.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after removal, got %v", err)
	}
}

func TestRemove_MissingHabit(t *testing.T) {
	tracker := NewTracker(nil, nil)
	if err := tracker.Remove("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordCompletion_RejectsDuplicateDay(t *testing.T) {
	now := time.Now()
	tracker := NewTracker(nil, nil)
	habit, _ := tracker.Add("read", "📚", "", now)

	if _, err := tracker.RecordCompletion(habit.ID, "us-1", "s001", day(now, 0), now); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if _, err := tracker.RecordCompletion(habit.ID, "us-2", "s002", day(now, 0), now); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}

	if got := tracker.RecordsFor(habit.ID); len(got) != 1 {
		t.Errorf("expected exactly one record, got %d", len(got))
	}
}

func TestRecordCompletion_MissingHabit(t *testing.T) {
	now := time.Now()
	tracker := NewTracker(nil, nil)
	if _, err := tracker.RecordCompletion("nope", "us-1", "s001", day(now, 0), now); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStreak_ConsecutiveDaysEndingToday(t *testing.T) {
	now := time.Now()
	tracker := NewTracker(nil, nil)
	habit, _ := tracker.Add("run", "🏃", "", now)

	// Gap at D-3, completions on D-2, D-1, D.
	for _, offset := range []int{-5, -4, -2, -1, 0} {
		if _, err := tracker.RecordCompletion(habit.ID, "us", "s001", day(now, offset), now); err != nil {
			t.Fatalf("record at offset %d failed: %v", offset, err)
		}
	}

	got, err := tracker.Get(habit.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Streak != 3 {
		t.Errorf("expected streak 3, got %d", got.Streak)
	}
	if got.TotalDays != 5 {
		t.Errorf("expected total 5, got %d", got.TotalDays)
	}
}

func TestStreak_ExtendsByOneNextDay(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	tracker := NewTracker(nil, nil)
	habit, _ := tracker.Add("run", "🏃", "", base)

	// Three consecutive days ending at base day.
	for _, offset := range []int{-2, -1, 0} {
		if _, err := tracker.RecordCompletion(habit.ID, "us", "s001", day(base, offset), base); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	got, _ := tracker.Get(habit.ID)
	if got.Streak != 3 {
		t.Fatalf("expected streak 3, got %d", got.Streak)
	}

	// Completing the next day extends the streak to 4.
	next := base.AddDate(0, 0, 1)
	if _, err := tracker.RecordCompletion(habit.ID, "us", "s001", day(next, 0), next); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	got, _ = tracker.Get(habit.ID)
	if got.Streak != 4 {
		t.Errorf("expected streak 4, got %d", got.Streak)
	}
}

func TestStreak_GapResetsToOne(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	tracker := NewTracker(nil, nil)
	habit, _ := tracker.Add("run", "🏃", "", base)

	for _, offset := range []int{-2, -1, 0} {
		if _, err := tracker.RecordCompletion(habit.ID, "us", "s001", day(base, offset), base); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	// Skip a day; the next completion starts a fresh streak of 1.
	skipTo := base.AddDate(0, 0, 2)
	if _, err := tracker.RecordCompletion(habit.ID, "us", "s001", day(skipTo, 0), skipTo); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	got, _ := tracker.Get(habit.ID)
	if got.Streak != 1 {
		t.Errorf("expected streak 1 after a gap, got %d", got.Streak)
	}
	if got.TotalDays != 4 {
		t.Errorf("expected total 4 regardless of contiguity, got %d", got.TotalDays)
	}
}

func TestHasCompletionOn(t *testing.T) {
	now := time.Now()
	tracker := NewTracker(nil, nil)
	habit, _ := tracker.Add("water plants", "🪴", "", now)

	if tracker.HasCompletionOn(habit.ID, day(now, 0)) {
		t.Error("expected no completion before recording")
	}
	if _, err := tracker.RecordCompletion(habit.ID, "us", "s001", day(now, 0), now); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if !tracker.HasCompletionOn(habit.ID, day(now, 0)) {
		t.Error("expected completion after recording")
	}
	if tracker.HasCompletionOn(habit.ID, day(now, -1)) {
		t.Error("expected no completion for yesterday")
	}
}

func TestNewTracker_CopiesInput(t *testing.T) {
	habits := []models.Habit{{ID: "h1", Name: "a"}}
	records := []models.CompletionRecord{{ID: "r1", HabitID: "h1", Date: "2026-08-30"}}

	tracker := NewTracker(habits, records)
	if err := tracker.Remove("h1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if len(habits) != 1 || habits[0].ID != "h1" {
		t.Error("caller's habit slice was mutated")
	}
	if len(records) != 1 || records[0].ID != "r1" {
		t.Error("caller's record slice was mutated")
	}
}
