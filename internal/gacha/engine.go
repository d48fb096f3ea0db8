package gacha

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/nobunaga0709/sticker-habit/internal/catalog"
	"github.com/nobunaga0709/sticker-habit/internal/models"
)

// ErrExhausted means every sticker in the catalog is already owned.
// Callers must not consume a ticket when a draw fails with this.
var ErrExhausted = errors.New("all stickers collected")

// Source supplies randomness for draws. *rand.Rand satisfies it; tests
// inject a scripted implementation.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Engine performs weighted random draws over a catalog, excluding
// stickers the caller already owns.
type Engine struct {
	cat *catalog.Catalog
	rng Source
}

// New creates an engine with a time-seeded random source.
func New(cat *catalog.Catalog) *Engine {
	return NewWithSource(cat, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSource creates an engine with a caller-supplied random source.
func NewWithSource(cat *catalog.Catalog, rng Source) *Engine {
	return &Engine{cat: cat, rng: rng}
}

// Draw selects one unowned sticker. The rarity tier is rolled first
// using the catalog's weight table; if every sticker of the rolled tier
// is owned, the pick falls back to the full unowned pool instead of
// re-rolling, so a draw always makes progress.
func (e *Engine) Draw(owned map[string]bool) (models.Sticker, error) {
	var unowned []models.Sticker
	for _, s := range e.cat.All() {
		if !owned[s.ID] {
			unowned = append(unowned, s)
		}
	}
	if len(unowned) == 0 {
		return models.Sticker{}, ErrExhausted
	}

	rarity := e.rollRarity()

	pool := unowned[:0:0]
	for _, s := range unowned {
		if s.Rarity == rarity {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		pool = unowned
	}

	return pool[e.rng.Intn(len(pool))], nil
}

// rollRarity samples a tier by cumulative-weight roulette over a
// uniform draw in [0, totalWeight). The tier order comes from the
// weight table itself, sorted for determinism, so every configured
// tier owns exactly its weight's share of the band.
func (e *Engine) rollRarity() models.Rarity {
	weights := e.cat.Weights()

	tiers := make([]models.Rarity, 0, len(weights))
	for rarity := range weights {
		tiers = append(tiers, rarity)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })

	roll := e.rng.Float64() * float64(weights.Total())

	cumulative := 0.0
	for _, rarity := range tiers {
		cumulative += float64(weights[rarity])
		if roll < cumulative {
			return rarity
		}
	}
	// Float rounding can leave roll == totalWeight; land on the last tier.
	return tiers[len(tiers)-1]
}
