package shop

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/item"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// Catalog is the slice of the item catalog the engine prices and instantiates from
type Catalog interface {
	Template(id string) (*domain.Template, bool)
	Instantiate(templateID string, modifiers map[string]any, persistenceKey *string) (*domain.Item, bool)
}

// Publisher receives domain events after a committed trade
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// EngineConfig holds the engine's economy tuning
type EngineConfig struct {
	ContrabandSubtypes []string
	ContrabandExp      int
}

// Engine runs buy, sell and resupply against shops. It never blocks and never
// talks to sockets; callers deliver the returned notifications.
type Engine struct {
	catalog   Catalog
	publisher Publisher
	config    EngineConfig
}

// NewEngine creates an engine. publisher may be nil.
func NewEngine(catalog Catalog, publisher Publisher, config EngineConfig) *Engine {
	return &Engine{catalog: catalog, publisher: publisher, config: config}
}

// Receipt describes a committed trade
type Receipt struct {
	Price int
	// Item is the inventory instance touched by the trade: the granted (or
	// merged-into) instance for buy, the remaining stack for sell, nil when the
	// sold entry was destroyed.
	Item *domain.Item
	// Released is the persistence key of an inventory entry the sale destroyed.
	Released      *string
	ExpGained     int
	Notifications []domain.Notification
}

// BoughtPayload is sent to the buyer
type BoughtPayload struct {
	ShopID string    `json:"shopId"`
	Item   item.View `json:"item"`
	Price  int       `json:"price"`
	Cash   int       `json:"cash"`
}

// SoldPayload is sent to the seller
type SoldPayload struct {
	ShopID    string `json:"shopId"`
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Cash      int    `json:"cash"`
	ExpGained int    `json:"expGained,omitempty"`
}

// Buy purchases one unit of a sell-list entry for actor
func (e *Engine) Buy(ctx context.Context, actor domain.Character, s *Shop, ref EntryRef) (*Receipt, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBuyCalled, "shop", s.ID, "user", actor.ID(), "index", ref.Index, "item", ref.ItemID)

	// 1. Shop must be selling
	if !s.Sell.Enabled {
		return nil, domain.ErrShopNotSelling
	}

	// 2. Resolve the current entry by identity
	index, entry, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	// 3. Rank gate
	if actor.Exp() < entry.ExpRequired {
		return nil, fmt.Errorf("%w: requires %d experience", domain.ErrRankTooLow, entry.ExpRequired)
	}

	// 4. Backing template
	tmpl, ok := e.catalog.Template(entry.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, entry.ID)
	}

	// 5-6. Price and funds
	price := Price(tmpl.Stats.Price, s.Sell.PriceMultiplier)
	if actor.Cash() < price {
		return nil, fmt.Errorf("%w: costs %d", domain.ErrInsufficientFunds, price)
	}

	// 7. Stock
	if entry.ShopQuantity == 0 {
		return nil, domain.ErrOutOfStock
	}

	// 8. Fresh instance and capacity, before any mutation
	granted, ok := e.catalog.Instantiate(entry.ID, entry.Modifiers, nil)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, entry.ID)
	}
	if granted.Stackable() {
		granted.Durability = TradeUnit
	}
	if !actor.HasRoomForItem(granted) {
		return nil, domain.ErrNoInventorySpace
	}

	// 9. Commit
	actor.UpdateCash(-price)
	finite := entry.ShopQuantity != domain.InfiniteQuantity
	if finite && entry.ShopQuantity > 0 {
		entry.ShopQuantity--
	}
	held := actor.GiveItem(granted, nil)

	// 10. Notify; sold-out entries leave the list before the broadcast
	if finite && entry.ShopQuantity == 0 {
		s.Sell.List = slices.Delete(s.Sell.List, index, index+1)
	}
	notes := []domain.Notification{
		domain.NotifyUser(actor.ID(), domain.Event{
			Type:    domain.EventShopBought,
			Payload: BoughtPayload{ShopID: s.ID, Item: item.ViewOf(held), Price: price, Cash: actor.Cash()},
		}),
	}
	if finite {
		notes = append(notes, e.listBroadcast(ctx, s))
	}

	e.publish(ctx, event.NewItemBoughtEvent(actor.ID(), s.ID, entry.ID, price))
	log.Info(LogMsgItemPurchased, "shop", s.ID, "user", actor.ID(), "item", entry.ID, "price", price)

	return &Receipt{Price: price, Item: held, Notifications: notes}, nil
}

// Sell sells one unit of the inventory item with fingerprint to the shop
func (e *Engine) Sell(ctx context.Context, actor domain.Character, s *Shop, fingerprint string) (*Receipt, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSellCalled, "shop", s.ID, "user", actor.ID(), "fingerprint", fingerprint)

	// 1. Shop must be buying
	if !s.Buy.Enabled {
		return nil, domain.ErrShopNotBuying
	}

	// 2. Item must be held
	held, ok := actor.FindItem(fingerprint)
	if !ok {
		return nil, fmt.Errorf(ErrFmtInventoryItemAbsent, domain.ErrNotFound, fingerprint)
	}

	// 3. Shop must want it
	if !s.wants(held) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotWanted, held.ID)
	}

	// 4. Enough units
	if held.Stackable() && held.Durability < TradeUnit {
		return nil, domain.ErrNoneLeft
	}

	// 5. Price
	tmpl, ok := e.catalog.Template(held.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, held.ID)
	}
	price := Price(tmpl.Stats.Price, s.Buy.PriceMultiplier)

	// 6. Remove or decrement
	receipt := &Receipt{Price: price}
	var sold *domain.Item
	if held.Stackable() {
		held.Durability -= TradeUnit
		if held.Durability <= 0 {
			actor.RemoveItem(fingerprint)
			receipt.Released = held.PersistenceKey
		} else {
			receipt.Item = held
		}
		if unit, ok := e.catalog.Instantiate(held.ID, held.Modifiers, nil); ok {
			unit.Durability = TradeUnit
			sold = unit
		}
	} else {
		actor.RemoveItem(fingerprint)
		receipt.Released = held.PersistenceKey
		held.PersistenceKey = nil
		held.Slot = nil
		sold = held
	}

	// 7. Credit cash and any contraband bonus
	actor.UpdateCash(price)
	if slices.Contains(e.config.ContrabandSubtypes, held.Subtype) {
		actor.UpdateExp(e.config.ContrabandExp)
		receipt.ExpGained = e.config.ContrabandExp
	}

	// 8. Resell
	if s.Buy.Resell && sold != nil {
		s.Sell.List = StackingMerge(s.Sell.List, sold, nil)
	}

	// 9. Notify
	receipt.Notifications = []domain.Notification{
		domain.NotifyUser(actor.ID(), domain.Event{
			Type: domain.EventShopSold,
			Payload: SoldPayload{
				ShopID:    s.ID,
				ItemID:    held.ID,
				Name:      item.Title(tmpl.Name),
				Price:     price,
				Cash:      actor.Cash(),
				ExpGained: receipt.ExpGained,
			},
		}),
		e.listBroadcast(ctx, s),
	}

	e.publish(ctx, event.NewItemSoldEvent(actor.ID(), s.ID, held.ID, price, receipt.ExpGained))
	log.Info(LogMsgItemSold, "shop", s.ID, "user", actor.ID(), "item", held.ID, "price", price)

	return receipt, nil
}

// resolve finds the entry ref points at in the current list
func (s *Shop) resolve(ref EntryRef) (int, *domain.Item, error) {
	if ref.Fingerprint != "" {
		idx, entry, ok := s.entryByFingerprint(ref.Fingerprint)
		if !ok || (ref.ItemID != "" && entry.ID != ref.ItemID) {
			return 0, nil, fmt.Errorf(ErrFmtEntryGone, domain.ErrNotFound, ref.Fingerprint)
		}
		return idx, entry, nil
	}
	if ref.Index < 0 || ref.Index >= len(s.Sell.List) {
		return 0, nil, fmt.Errorf(ErrFmtEntryNotAtIndex, domain.ErrNotFound, ref.Index)
	}
	entry := s.Sell.List[ref.Index]
	if entry.ID != ref.ItemID {
		return 0, nil, fmt.Errorf(ErrFmtEntryMismatch, domain.ErrNotFound, ref.Index, entry.ID, ref.ItemID)
	}
	return ref.Index, entry, nil
}

func (s *Shop) wants(it *domain.Item) bool {
	if len(s.Buy.List) > 0 && !slices.Contains(s.Buy.List, it.ID) {
		return false
	}
	if slices.Contains(s.Buy.IgnoreType, it.Type) || slices.Contains(s.Buy.IgnoreSubtype, it.Subtype) {
		return false
	}
	return true
}

func (e *Engine) listBroadcast(ctx context.Context, s *Shop) domain.Notification {
	return domain.NotifyRoom(s.Location, domain.Event{
		Type:    domain.EventShopList,
		Payload: SellListPayload(ctx, s, e.catalog),
	})
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
