package models

import "time"

type Rarity string

const (
	RarityNormal    Rarity = "normal"
	RarityRare      Rarity = "rare"
	RaritySuperRare Rarity = "super_rare"
)

// Sticker is a collectible definition from the fixed catalog.
type Sticker struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Rarity Rarity `json:"rarity"`
	Color  string `json:"color"` // background color for the sticker card
}

// OwnedSticker is one acquired instance of a catalog sticker. It is
// created only by a successful gacha draw and is never deleted; IsUsed
// flips to true exactly once, when the sticker is spent on a habit
// completion.
type OwnedSticker struct {
	ID         string    `json:"id"`
	StickerID  string    `json:"sticker_id"`
	AcquiredAt time.Time `json:"acquired_at"`
	IsUsed     bool      `json:"is_used"`
}
