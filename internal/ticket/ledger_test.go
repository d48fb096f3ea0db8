package ticket

import (
	"errors"
	"testing"
	"time"

	"github.com/nobunaga0709/sticker-habit/internal/models"
)

func TestGrantDailyIfDue_GrantsOnceWhenEmpty(t *testing.T) {
	yesterday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	ledger := NewLedger(models.TicketLedger{Count: 0, LastGrantedAt: &yesterday})

	if !ledger.GrantDailyIfDue(now) {
		t.Fatal("expected a grant on the first check of a new day")
	}
	if ledger.Count() != 1 {
		t.Fatalf("expected count 1 after grant, got %d", ledger.Count())
	}

	// Repeated checks on the same day are no-ops while the ticket
	// remains unspent.
	if ledger.GrantDailyIfDue(now.Add(time.Minute)) {
		t.Error("expected no grant while tickets remain")
	}
	if ledger.Count() != 1 {
		t.Errorf("expected count to stay 1, got %d", ledger.Count())
	}
}

func TestGrantDailyIfDue_IdempotentAfterDrawSameDay(t *testing.T) {
	yesterday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	ledger := NewLedger(models.TicketLedger{Count: 0, LastGrantedAt: &yesterday})
	ledger.GrantDailyIfDue(now)
	if err := ledger.ConsumeForDraw(now); err != nil {
		t.Fatalf("consume failed: %v", err)
	}

	// Count is back to zero but the draw stamped today, so the timer
	// check must not grant again until tomorrow.
	for i := 0; i < 5; i++ {
		if ledger.GrantDailyIfDue(now.Add(time.Duration(i) * time.Minute)) {
			t.Fatal("granted twice on the same day")
		}
	}
	if ledger.Count() != 0 {
		t.Errorf("expected count 0, got %d", ledger.Count())
	}
}

func TestGrantDailyIfDue_NoGrantWhileTicketsRemain(t *testing.T) {
	lastWeek := time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	ledger := NewLedger(models.TicketLedger{Count: 2, LastGrantedAt: &lastWeek})

	if ledger.GrantDailyIfDue(now) {
		t.Error("expected no grant while count > 0, even across days")
	}
	if ledger.Count() != 2 {
		t.Errorf("expected count 2, got %d", ledger.Count())
	}
}

func TestGrantDailyIfDue_GrantsWhenNeverGranted(t *testing.T) {
	ledger := NewLedger(models.TicketLedger{Count: 0})

	if !ledger.GrantDailyIfDue(time.Now()) {
		t.Fatal("expected a grant when LastGrantedAt is unset")
	}
	if snap := ledger.Snapshot(); snap.LastGrantedAt != nil {
		t.Error("grant must not set LastGrantedAt")
	}
}

func TestConsumeForDraw(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.Local)
	ledger := NewLedger(models.TicketLedger{Count: 1})

	if err := ledger.ConsumeForDraw(now); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	snap := ledger.Snapshot()
	if snap.Count != 0 {
		t.Errorf("expected count 0, got %d", snap.Count)
	}
	if snap.LastGrantedAt == nil || !snap.LastGrantedAt.Equal(now) {
		t.Errorf("expected LastGrantedAt %v, got %v", now, snap.LastGrantedAt)
	}

	if err := ledger.ConsumeForDraw(now); !errors.Is(err, ErrNoTickets) {
		t.Errorf("expected ErrNoTickets, got %v", err)
	}
	if ledger.Count() != 0 {
		t.Errorf("count went negative: %d", ledger.Count())
	}
}
