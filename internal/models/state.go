package models

// AppState is the unit of persistence: the full application snapshot,
// loaded once at startup and written after every mutating operation.
type AppState struct {
	OwnedStickers []OwnedSticker     `json:"owned_stickers"`
	Habits        []Habit            `json:"habits"`
	Records       []CompletionRecord `json:"records"`
	Ticket        TicketLedger       `json:"ticket"`
}

// DefaultState returns the fresh state for a new installation: nothing
// collected, one free ticket, no grant timestamp.
func DefaultState() AppState {
	return AppState{
		OwnedStickers: []OwnedSticker{},
		Habits:        []Habit{},
		Records:       []CompletionRecord{},
		Ticket:        TicketLedger{Count: 1},
	}
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	out := AppState{
		OwnedStickers: make([]OwnedSticker, len(s.OwnedStickers)),
		Habits:        make([]Habit, len(s.Habits)),
		Records:       make([]CompletionRecord, len(s.Records)),
		Ticket:        s.Ticket,
	}
	copy(out.OwnedStickers, s.OwnedStickers)
	copy(out.Habits, s.Habits)
	copy(out.Records, s.Records)
	if s.Ticket.LastGrantedAt != nil {
		t := *s.Ticket.LastGrantedAt
		out.Ticket.LastGrantedAt = &t
	}
	return out
}
