package domain

// InfiniteQuantity marks a shop entry that never runs out.
const InfiniteQuantity = -1

// Stats holds the per-instance mutable fields copied from a template.
// JSON names double as modifier keys.
type Stats struct {
	Price         int    `json:"price"`
	PriceMin      int    `json:"priceMin,omitempty"`
	PriceMax      int    `json:"priceMax,omitempty"`
	Stackable     bool   `json:"stackable"`
	Equipable     bool   `json:"equipable"`
	DurabilityMin int    `json:"durabilityMin,omitempty"`
	DurabilityMax int    `json:"durabilityMax,omitempty"`
	Damage        int    `json:"damage,omitempty"`
	Defense       int    `json:"defense,omitempty"`
	UseEffect     string `json:"useEffect,omitempty"`
}

// Template is the shared definition every instance of an item id is built from.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Subtype     string `json:"subtype"`
	Stats       Stats  `json:"stats"`
}

// Item is a concrete instance living in exactly one container: an inventory,
// a world tile or a shop sell list.
type Item struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Type           string         `json:"type"`
	Subtype        string         `json:"subtype"`
	Stats          Stats          `json:"stats"`
	Modifiers      map[string]any `json:"modifiers,omitempty"`
	Fingerprint    string         `json:"fingerprint"`
	PersistenceKey *string        `json:"-"`
	// Durability is the quantity for stackable items.
	Durability int     `json:"durability"`
	Slot       *string `json:"slot,omitempty"`

	// Only meaningful inside a shop sell list.
	ShopQuantity int `json:"shopQuantity,omitempty"`
	ExpRequired  int `json:"expRequired,omitempty"`
}

// Stackable reports whether quantity is tracked on Durability.
func (i *Item) Stackable() bool {
	return i.Stats.Stackable
}

// Persisted reports whether the instance has a stored record.
func (i *Item) Persisted() bool {
	return i.PersistenceKey != nil
}

// ItemRecord is the persistable form of an owned item.
type ItemRecord struct {
	TemplateID string         `json:"templateId"`
	Modifiers  map[string]any `json:"modifiers,omitempty"`
	Durability int            `json:"durability"`
	Slot       *string        `json:"slot,omitempty"`
}
