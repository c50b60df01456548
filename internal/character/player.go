package character

import (
	"slices"
	"sync"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Player is the in-memory character. Capacity counts inventory entries, so a
// stackable merging into an existing stack takes no extra room.
type Player struct {
	mu        sync.RWMutex
	id        string
	name      string
	cash      int
	exp       int
	location  domain.LocationKey
	capacity  int
	inventory []*domain.Item
}

var _ domain.Character = (*Player)(nil)

// Profile is the non-inventory state a character starts from
type Profile struct {
	ID       string
	Name     string
	Cash     int
	Exp      int
	Location domain.LocationKey
	Capacity int
}

// NewPlayer creates an empty-handed player from a profile
func NewPlayer(p Profile) *Player {
	capacity := p.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	name := p.Name
	if name == "" {
		name = p.ID
	}
	return &Player{
		id:       p.ID,
		name:     name,
		cash:     p.Cash,
		exp:      p.Exp,
		location: p.Location,
		capacity: capacity,
	}
}

func (p *Player) ID() string   { return p.id }
func (p *Player) Name() string { return p.name }

// Capacity is the maximum number of inventory entries
func (p *Player) Capacity() int { return p.capacity }

// Inventory returns the held items in acquisition order
func (p *Player) Inventory() []*domain.Item {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.inventory)
}

// HasRoomForItem reports whether GiveItem would succeed without exceeding capacity
func (p *Player) HasRoomForItem(it *domain.Item) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stackFor(it) != nil {
		return true
	}
	return len(p.inventory) < p.capacity
}

// GiveItem stores it, merging stackables into an existing stack
func (p *Player) GiveItem(it *domain.Item, slot *string) *domain.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	if stack := p.stackFor(it); stack != nil {
		stack.Durability += it.Durability
		return stack
	}
	it.Slot = slot
	p.inventory = append(p.inventory, it)
	return it
}

// FindItem looks an item up by fingerprint
func (p *Player) FindItem(fingerprint string) (*domain.Item, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i := p.indexOf(fingerprint)
	if i < 0 {
		return nil, false
	}
	return p.inventory[i], true
}

// RemoveItem takes the item with fingerprint out of the inventory
func (p *Player) RemoveItem(fingerprint string) (*domain.Item, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(fingerprint)
	if i < 0 {
		return nil, false
	}
	it := p.inventory[i]
	p.inventory = slices.Delete(p.inventory, i, i+1)
	return it, true
}

func (p *Player) Cash() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cash
}

func (p *Player) UpdateCash(delta int) {
	p.mu.Lock()
	p.cash += delta
	p.mu.Unlock()
}

func (p *Player) Exp() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exp
}

func (p *Player) UpdateExp(delta int) {
	p.mu.Lock()
	p.exp += delta
	p.mu.Unlock()
}

func (p *Player) LocationID() domain.LocationKey {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.location
}

func (p *Player) SetLocation(loc domain.LocationKey) {
	p.mu.Lock()
	p.location = loc
	p.mu.Unlock()
}

// load appends stored items as-is, bypassing capacity and merging
func (p *Player) load(items []*domain.Item) {
	p.mu.Lock()
	p.inventory = append(p.inventory, items...)
	p.mu.Unlock()
}

func (p *Player) stackFor(it *domain.Item) *domain.Item {
	if !it.Stackable() {
		return nil
	}
	for _, held := range p.inventory {
		if held.Stackable() && held.ID == it.ID && held != it {
			return held
		}
	}
	return nil
}

func (p *Player) indexOf(fingerprint string) int {
	return slices.IndexFunc(p.inventory, func(it *domain.Item) bool {
		return it.Fingerprint == fingerprint
	})
}
