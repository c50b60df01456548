package shop

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// StackingMerge folds an instance into a sell list. Stackables add amount
// (default: the instance's own quantity) to the entry of the same id.
// Non-stackables are absorbed by an infinite entry of the same id, bump an entry
// with the same id and durability, or are appended.
func StackingMerge(list []*domain.Item, it *domain.Item, amount *int) []*domain.Item {
	if it.Stackable() {
		qty := it.Durability
		if amount != nil {
			qty = *amount
		}
		for _, entry := range list {
			if entry.ID != it.ID {
				continue
			}
			if entry.ShopQuantity != domain.InfiniteQuantity {
				entry.ShopQuantity += qty
			}
			return list
		}
		it.ShopQuantity = qty
		return append(list, it)
	}

	for _, entry := range list {
		if entry.ID == it.ID && entry.ShopQuantity == domain.InfiniteQuantity {
			return list
		}
	}
	for _, entry := range list {
		if entry.ID == it.ID && entry.Durability == it.Durability {
			entry.ShopQuantity++
			return list
		}
	}
	it.ShopQuantity = 1
	if amount != nil {
		it.ShopQuantity = *amount
	}
	return append(list, it)
}

// Resupply replaces the finite part of the sell list with N fresh draws from the
// supply pool. Infinite entries survive. Shops without supply are untouched.
func (e *Engine) Resupply(ctx context.Context, s *Shop, rng *rand.Rand) []domain.Notification {
	if s.Supply == nil {
		return nil
	}
	log := logger.FromContext(ctx)

	list := make([]*domain.Item, 0, len(s.Sell.List))
	for _, entry := range s.Sell.List {
		if entry.ShopQuantity == domain.InfiniteQuantity {
			list = append(list, entry)
		}
	}

	pool := slices.Clone(s.Supply.Items)
	n := s.Supply.NumberOfItems.Draw(rng)
	for range n {
		if len(pool) == 0 {
			break
		}
		idx := rng.IntN(len(pool))
		candidate := pool[idx]
		if s.Supply.UniqueItems {
			pool = slices.Delete(pool, idx, idx+1)
		}

		it, ok := e.catalog.Instantiate(candidate.ID, candidate.Modifiers, nil)
		if !ok {
			log.Warn(LogMsgSupplyUnknown, "shop", s.ID, "item", candidate.ID)
			continue
		}
		it.ShopQuantity = candidate.Quantity.Draw(rng)
		it.ExpRequired = candidate.ExpRequired
		list = append(list, it)
	}
	s.Sell.List = list

	e.publish(ctx, event.NewShopResuppliedEvent(s.ID, len(list)))
	log.Debug(LogMsgShopResupplied, "shop", s.ID, "entries", len(list))

	return []domain.Notification{e.listBroadcast(ctx, s)}
}
