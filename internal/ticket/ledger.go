package ticket

import (
	"errors"
	"time"

	"github.com/nobunaga0709/sticker-habit/internal/constants"
	"github.com/nobunaga0709/sticker-habit/internal/models"
)

// ErrNoTickets means a draw was attempted with zero tickets.
var ErrNoTickets = errors.New("no gacha tickets left")

// Ledger tracks gacha draw credits and enforces the one-grant-per-day
// rule. The grant check is designed to run on a timer as well as at
// startup, so it is idempotent within a calendar day.
type Ledger struct {
	state models.TicketLedger
}

// NewLedger wraps an existing ledger snapshot.
func NewLedger(state models.TicketLedger) *Ledger {
	return &Ledger{state: state}
}

// CanDraw reports whether a draw may proceed.
func (l *Ledger) CanDraw() bool {
	return l.state.Count > 0
}

// Count returns the current ticket count.
func (l *Ledger) Count() int {
	return l.state.Count
}

// GrantDailyIfDue grants one ticket when the count has hit zero and no
// grant-eligible draw happened today. It reports whether a grant fired.
// LastGrantedAt is deliberately left untouched here: only a successful
// draw updates it, so tickets can accumulate from zero at most once per
// calendar day.
func (l *Ledger) GrantDailyIfDue(now time.Time) bool {
	if l.state.Count > 0 {
		return false
	}
	if l.state.LastGrantedAt != nil && sameCalendarDay(*l.state.LastGrantedAt, now) {
		return false
	}
	l.state.Count = 1
	return true
}

// ConsumeForDraw spends one ticket and records the draw time.
func (l *Ledger) ConsumeForDraw(now time.Time) error {
	if l.state.Count == 0 {
		return ErrNoTickets
	}
	l.state.Count--
	l.state.LastGrantedAt = &now
	return nil
}

// Snapshot returns the ledger state for persistence.
func (l *Ledger) Snapshot() models.TicketLedger {
	out := l.state
	if l.state.LastGrantedAt != nil {
		t := *l.state.LastGrantedAt
		out.LastGrantedAt = &t
	}
	return out
}

// sameCalendarDay compares two instants by local calendar day.
func sameCalendarDay(a, b time.Time) bool {
	return a.Local().Format(constants.DateFormat) == b.Local().Format(constants.DateFormat)
}
