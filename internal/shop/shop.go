package shop

import (
	"math/rand/v2"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Shop is a trader pinned to one location
type Shop struct {
	ID          string
	Fingerprint string
	Name        string
	Location    domain.LocationKey
	Sell        SellConfig
	Buy         BuyConfig
	Supply      *SupplyConfig
}

// SellConfig is what the shop offers to players
type SellConfig struct {
	Enabled         bool
	PriceMultiplier float64
	List            []*domain.Item
}

// BuyConfig is what the shop accepts from players
type BuyConfig struct {
	Enabled         bool
	PriceMultiplier float64
	// List restricts accepted ids when non-empty.
	List          []string
	IgnoreType    []string
	IgnoreSubtype []string
	Resell        bool
}

// SupplyConfig drives periodic restocking
type SupplyConfig struct {
	Items         []SupplyItem
	NumberOfItems Range
	UniqueItems   bool
}

// SupplyItem is one restock candidate
type SupplyItem struct {
	ID          string         `json:"id"`
	Quantity    Range          `json:"quantity"`
	ExpRequired int            `json:"expRequired"`
	Modifiers   map[string]any `json:"modifiers,omitempty"`
}

// Range is an inclusive [min, max] pair
type Range [2]int

func (r Range) Min() int { return r[0] }
func (r Range) Max() int { return r[1] }

// Valid reports whether min <= max and both are non-negative
func (r Range) Valid() bool {
	return r[0] >= 0 && r[0] <= r[1]
}

// Draw picks uniformly in [min, max]
func (r Range) Draw(rng *rand.Rand) int {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rng.IntN(r[1]-r[0]+1)
}

// EntryRef identifies a sell-list entry. A non-empty Fingerprint is resolved by
// identity; otherwise Index is used and checked against ItemID.
type EntryRef struct {
	Index       int
	ItemID      string
	Fingerprint string
}

func (s *Shop) entryByFingerprint(fp string) (int, *domain.Item, bool) {
	for i, it := range s.Sell.List {
		if it.Fingerprint == fp {
			return i, it, true
		}
	}
	return -1, nil, false
}
