package domain

// Character is the stat and inventory surface the core mutates.
type Character interface {
	ID() string
	Name() string
	Inventory() []*Item
	HasRoomForItem(item *Item) bool
	// GiveItem places item in the inventory and returns the instance now holding it,
	// which is an existing stack when a stackable item merges.
	GiveItem(item *Item, slot *string) *Item
	FindItem(fingerprint string) (*Item, bool)
	RemoveItem(fingerprint string) (*Item, bool)
	Cash() int
	UpdateCash(delta int)
	Exp() int
	UpdateExp(delta int)
	LocationID() LocationKey
	SetLocation(loc LocationKey)
}

// ProfileRecord is the persistable state of a character outside its items.
type ProfileRecord struct {
	Cash     int         `json:"cash"`
	Exp      int         `json:"exp"`
	Location LocationKey `json:"location"`
}
