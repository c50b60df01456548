package item

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// DropAt places an instance on the ground at loc. Stackable items merge into an
// existing entry of the same id. The instance loses its slot and persistence key;
// the released key is returned so the caller can delete the stored record.
func (c *Catalog) DropAt(loc domain.LocationKey, it *domain.Item) *string {
	released := it.PersistenceKey
	it.PersistenceKey = nil
	it.Slot = nil

	c.dropsMu.Lock()
	defer c.dropsMu.Unlock()

	list := c.drops[loc]
	if it.Stackable() {
		for _, existing := range list {
			if existing.ID == it.ID {
				existing.Durability += it.Durability
				slog.Debug(LogMsgItemDropped, "location", loc.String(), "item", it.ID, "merged", true)
				return released
			}
		}
	}
	c.drops[loc] = append(list, it)
	slog.Debug(LogMsgItemDropped, "location", loc.String(), "item", it.ID, "merged", false)
	return released
}

// FindAt peeks at the entry PickupAt would take, without removing it
func (c *Catalog) FindAt(loc domain.LocationKey, nameQuery string) (*domain.Item, error) {
	c.dropsMu.Lock()
	defer c.dropsMu.Unlock()

	idx, err := c.matchLocked(loc, nameQuery)
	if err != nil {
		return nil, err
	}
	return c.drops[loc][idx], nil
}

// PickupAt removes items from the ground. An empty query takes the first entry.
// For stackables an amount below the available quantity splits off a new
// partial stack; amount <= 0 takes everything.
func (c *Catalog) PickupAt(loc domain.LocationKey, nameQuery string, amount int) (*domain.Item, error) {
	c.dropsMu.Lock()
	defer c.dropsMu.Unlock()

	idx, err := c.matchLocked(loc, nameQuery)
	if err != nil {
		return nil, err
	}
	list := c.drops[loc]
	entry := list[idx]

	if entry.Stackable() && amount > 0 && amount < entry.Durability {
		part, ok := c.Instantiate(entry.ID, entry.Modifiers, nil)
		if !ok {
			slog.Warn(LogMsgTemplateVanished, "item", entry.ID, "location", loc.String())
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, entry.ID)
		}
		part.Durability = amount
		entry.Durability -= amount
		slog.Debug(LogMsgItemPickedUp, "location", loc.String(), "item", entry.ID, "amount", amount)
		return part, nil
	}

	list = append(list[:idx], list[idx+1:]...)
	if len(list) == 0 {
		delete(c.drops, loc)
	} else {
		c.drops[loc] = list
	}
	slog.Debug(LogMsgItemPickedUp, "location", loc.String(), "item", entry.ID, "amount", entry.Durability)
	return entry, nil
}

// ItemsAt returns a snapshot of the ground list at loc
func (c *Catalog) ItemsAt(loc domain.LocationKey) []*domain.Item {
	c.dropsMu.Lock()
	defer c.dropsMu.Unlock()

	list := c.drops[loc]
	out := make([]*domain.Item, len(list))
	copy(out, list)
	return out
}

// matchLocked prefers an exact case-insensitive name, then a prefix
func (c *Catalog) matchLocked(loc domain.LocationKey, nameQuery string) (int, error) {
	list := c.drops[loc]
	if len(list) == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrEmpty, loc.String())
	}

	query := strings.TrimSpace(nameQuery)
	if query == "" {
		return 0, nil
	}
	for i, it := range list {
		if strings.EqualFold(it.Name, query) {
			return i, nil
		}
	}
	lower := strings.ToLower(query)
	for i, it := range list {
		if strings.HasPrefix(strings.ToLower(it.Name), lower) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no %q here", domain.ErrNotFound, query)
}
