package cli

import (
	"fmt"

	"github.com/nobunaga0709/sticker-habit/internal/models"
)

type StickersCmd struct {
	All bool `help:"Show locked catalog entries as well."`
}

func (c *StickersCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	ownedByID := make(map[string][]models.OwnedSticker)
	for _, o := range store.OwnedStickers() {
		ownedByID[o.StickerID] = append(ownedByID[o.StickerID], o)
	}

	fmt.Printf("Sticker book (%d/%d collected, %d ticket(s)):\n\n",
		store.CollectedCount(), ctx.Catalog.Size(), store.TicketCount())

	for _, s := range ctx.Catalog.All() {
		copies := ownedByID[s.ID]
		if len(copies) == 0 {
			if c.All {
				fmt.Printf("  🔒 ???%-26s  [%s]\n", "", rarityLabel(s.Rarity))
			}
			continue
		}

		unused := 0
		for _, o := range copies {
			if !o.IsUsed {
				unused++
			}
		}
		fmt.Printf("  %s %-28s  [%s]  x%d (%d unused)\n",
			s.Emoji, s.Name, rarityLabel(s.Rarity), len(copies), unused)
	}

	return nil
}
