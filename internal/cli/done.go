package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/nobunaga0709/sticker-habit/internal/app"
)

type DoneCmd struct {
	Habit   string `arg:"" help:"Habit ID or name."`
	Sticker string `short:"s" help:"Owned sticker ID to place on the calendar. Defaults to the oldest unused sticker."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	if err := store.Tick(time.Now()); err != nil {
		return err
	}

	habit, err := resolveHabit(store, c.Habit)
	if err != nil {
		return err
	}

	ownedID := c.Sticker
	if ownedID == "" {
		unused := store.UnusedStickers()
		if len(unused) == 0 {
			return fmt.Errorf("no unused stickers, draw one first with 'stickerhabit gacha'")
		}
		ownedID = unused[0].ID
	}

	record, err := store.CompleteHabit(habit.ID, ownedID, time.Now())
	if err != nil {
		if errors.Is(err, app.ErrNoStickerAvailable) {
			return fmt.Errorf("sticker %s is not available for placing", ownedID)
		}
		return err
	}

	sticker, _ := ctx.Catalog.ByID(record.StickerID)
	updated, err := store.Habit(habit.ID)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s completed for %s\n", habit.Name, record.Date)
	fmt.Printf("  Placed sticker: %s %s\n", sticker.Emoji, sticker.Name)
	fmt.Printf("  Streak: %d day(s), total %d day(s)\n", updated.Streak, updated.TotalDays)
	return nil
}
