package models

import "time"

// Habit represents a recurring practice to track. Streak and TotalDays
// are derived from completion records but cached here, recomputed on
// the write path only.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"` // emoji icon
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	Streak    int       `json:"streak"`
	TotalDays int       `json:"total_days"`
}

// CompletionRecord proves a habit was marked done on one calendar day,
// linked to the owned sticker spent to celebrate it. At most one record
// exists per (HabitID, Date) pair.
type CompletionRecord struct {
	ID             string `json:"id"`
	HabitID        string `json:"habit_id"`
	Date           string `json:"date"` // YYYY-MM-DD format, local time
	OwnedStickerID string `json:"owned_sticker_id"`
	StickerID      string `json:"sticker_id"`
}
