package cli

import (
	"fmt"
	"time"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	dateStr := c.Date
	if dateStr == "today" {
		dateStr = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}

	records := store.RecordsOn(dateStr)
	fmt.Printf("Completions for %s:\n\n", dateStr)

	if len(records) == 0 {
		fmt.Println("  Nothing completed on this day")
		return nil
	}

	for _, r := range records {
		habitName := "(deleted habit)"
		if h, err := store.Habit(r.HabitID); err == nil {
			habitName = fmt.Sprintf("%s %s", h.Icon, h.Name)
		}

		sticker, ok := ctx.Catalog.ByID(r.StickerID)
		stickerStr := r.StickerID
		if ok {
			stickerStr = fmt.Sprintf("%s %s", sticker.Emoji, sticker.Name)
		}

		fmt.Printf("  %-34s  sticker: %s\n", habitName, stickerStr)
	}

	return nil
}
