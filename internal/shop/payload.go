package shop

import (
	"context"

	"github.com/osse101/TextRealm_Go/internal/item"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// SellList is the room broadcast of a shop's offer
type SellList struct {
	ShopID  string          `json:"shopId"`
	Name    string          `json:"name"`
	Selling bool            `json:"selling"`
	Items   []SellListEntry `json:"items"`
}

// SellListEntry is one priced offer. Index is the entry's position in the live
// list, which /buy echoes back with the id.
type SellListEntry struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	ExpRequired int    `json:"expRequired"`
	Fingerprint string `json:"fingerprint"`
}

// SellListPayload snapshots the sell list with current prices
func SellListPayload(ctx context.Context, s *Shop, catalog Catalog) SellList {
	out := SellList{ShopID: s.ID, Name: s.Name, Selling: s.Sell.Enabled, Items: []SellListEntry{}}
	for i, entry := range s.Sell.List {
		tmpl, ok := catalog.Template(entry.ID)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgListedNoTemplate, "shop", s.ID, "item", entry.ID)
			continue
		}
		out.Items = append(out.Items, SellListEntry{
			Index:       i,
			ID:          entry.ID,
			Name:        item.Title(entry.Name),
			Price:       Price(tmpl.Stats.Price, s.Sell.PriceMultiplier),
			Quantity:    entry.ShopQuantity,
			ExpRequired: entry.ExpRequired,
			Fingerprint: entry.Fingerprint,
		})
	}
	return out
}
