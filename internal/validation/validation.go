package validation

import (
	"fmt"
	"time"

	"github.com/nobunaga0709/sticker-habit/internal/catalog"
	"github.com/nobunaga0709/sticker-habit/internal/constants"
	"github.com/nobunaga0709/sticker-habit/internal/models"
)

type ConflictType string

const (
	ConflictOrphanRecordHabit    ConflictType = "orphan_record_habit"
	ConflictOrphanRecordSticker  ConflictType = "orphan_record_sticker"
	ConflictUnknownCatalogID     ConflictType = "unknown_catalog_id"
	ConflictDuplicateDay         ConflictType = "duplicate_day"
	ConflictInvalidDate          ConflictType = "invalid_date"
	ConflictNegativeTicketCount  ConflictType = "negative_ticket_count"
	ConflictStaleDerivedCounters ConflictType = "stale_derived_counters"
)

type Conflict struct {
	Type    ConflictType
	Message string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateState checks the referential integrity of a snapshot: every
// record must point at an existing habit, an existing owned sticker and
// a known catalog sticker; days must be unique per habit and well
// formed; the ticket count must not be negative; and the cached
// TotalDays on each habit must agree with a recount.
func (v *Validator) ValidateState(state models.AppState, cat *catalog.Catalog) ValidationResult {
	var result ValidationResult
	add := func(t ConflictType, format string, args ...interface{}) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:    t,
			Message: fmt.Sprintf(format, args...),
		})
	}

	habitIDs := make(map[string]bool, len(state.Habits))
	for _, h := range state.Habits {
		habitIDs[h.ID] = true
	}
	ownedIDs := make(map[string]bool, len(state.OwnedStickers))
	for _, owned := range state.OwnedStickers {
		ownedIDs[owned.ID] = true
		if _, ok := cat.ByID(owned.StickerID); !ok {
			add(ConflictUnknownCatalogID, "owned sticker %s references unknown catalog id %s", owned.ID, owned.StickerID)
		}
	}

	seenDays := map[string]bool{}
	recordsPerHabit := map[string]int{}
	for _, r := range state.Records {
		if !habitIDs[r.HabitID] {
			add(ConflictOrphanRecordHabit, "record %s references missing habit %s", r.ID, r.HabitID)
		}
		if !ownedIDs[r.OwnedStickerID] {
			add(ConflictOrphanRecordSticker, "record %s references missing owned sticker %s", r.ID, r.OwnedStickerID)
		}
		if _, ok := cat.ByID(r.StickerID); !ok {
			add(ConflictUnknownCatalogID, "record %s references unknown catalog id %s", r.ID, r.StickerID)
		}
		if _, err := time.ParseInLocation(constants.DateFormat, r.Date, time.Local); err != nil {
			add(ConflictInvalidDate, "record %s has malformed date %q", r.ID, r.Date)
		}
		key := r.HabitID + "|" + r.Date
		if seenDays[key] {
			add(ConflictDuplicateDay, "habit %s has more than one record for %s", r.HabitID, r.Date)
		}
		seenDays[key] = true
		recordsPerHabit[r.HabitID]++
	}

	for _, h := range state.Habits {
		if h.TotalDays != recordsPerHabit[h.ID] {
			add(ConflictStaleDerivedCounters, "habit %s caches total %d but has %d records", h.ID, h.TotalDays, recordsPerHabit[h.ID])
		}
	}

	if state.Ticket.Count < 0 {
		add(ConflictNegativeTicketCount, "ticket count is %d", state.Ticket.Count)
	}

	return result
}
