package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/nobunaga0709/sticker-habit/internal/gacha"
	"github.com/nobunaga0709/sticker-habit/internal/ticket"
)

type GachaCmd struct{}

func (c *GachaCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	// Run the daily grant before drawing so a fresh day's ticket is usable.
	if err := store.Tick(time.Now()); err != nil {
		return err
	}

	owned, err := store.DrawReward(time.Now())
	if err != nil {
		if errors.Is(err, ticket.ErrNoTickets) {
			return fmt.Errorf("no tickets left, complete a habit and come back tomorrow")
		}
		if errors.Is(err, gacha.ErrExhausted) {
			return fmt.Errorf("collection complete, there are no stickers left to win")
		}
		return err
	}

	sticker, _ := ctx.Catalog.ByID(owned.StickerID)
	fmt.Println("🎰 Rolling...")
	fmt.Printf("You won: %s %s [%s]\n", sticker.Emoji, sticker.Name, rarityLabel(sticker.Rarity))
	fmt.Printf("Collection: %d/%d  Tickets left: %d\n",
		store.CollectedCount(), ctx.Catalog.Size(), store.TicketCount())
	return nil
}
