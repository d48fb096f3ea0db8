package models

import "time"

// TicketLedger tracks gacha draw credits. Count never goes negative:
// it only increases via the once-per-day grant and decreases via a
// successful draw. LastGrantedAt is set by draws, not by grants.
type TicketLedger struct {
	Count         int        `json:"count"`
	LastGrantedAt *time.Time `json:"last_granted_at,omitempty"`
}
