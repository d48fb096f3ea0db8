package catalog

import (
	"github.com/nobunaga0709/sticker-habit/internal/models"
)

// Weights maps a rarity tier to its draw weight. The table is a
// configuration value: swapping the catalog or the weighting must not
// touch the draw engine.
type Weights map[models.Rarity]int

// Total returns the sum of all tier weights.
func (w Weights) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// DefaultWeights is the stock 70/25/5 distribution.
func DefaultWeights() Weights {
	return Weights{
		models.RarityNormal:    70,
		models.RarityRare:      25,
		models.RaritySuperRare: 5,
	}
}

// Catalog is the fixed, read-only set of collectible stickers plus the
// rarity weight table used for draws.
type Catalog struct {
	items   []models.Sticker
	byID    map[string]models.Sticker
	weights Weights
}

// New builds a catalog from a sticker list and a weight table.
func New(items []models.Sticker, weights Weights) *Catalog {
	byID := make(map[string]models.Sticker, len(items))
	for _, s := range items {
		byID[s.ID] = s
	}
	return &Catalog{
		items:   items,
		byID:    byID,
		weights: weights,
	}
}

// Default returns the preset 21-sticker catalog with default weights.
func Default() *Catalog {
	return New(PresetStickers(), DefaultWeights())
}

// All returns every sticker in the catalog.
func (c *Catalog) All() []models.Sticker {
	return c.items
}

// ByID looks up a sticker by catalog id.
func (c *Catalog) ByID(id string) (models.Sticker, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Size returns the number of stickers in the catalog.
func (c *Catalog) Size() int {
	return len(c.items)
}

// Weights returns the rarity weight table.
func (c *Catalog) Weights() Weights {
	return c.weights
}
