package item

import "github.com/osse101/TextRealm_Go/internal/domain"

// View is an immutable snapshot of an item for client payloads. Payloads are
// serialized off the game loop, so they never carry live *domain.Item pointers.
type View struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Display     string  `json:"display"`
	Type        string  `json:"type"`
	Subtype     string  `json:"subtype,omitempty"`
	Fingerprint string  `json:"fingerprint"`
	Quantity    int     `json:"quantity"`
	Slot        *string `json:"slot,omitempty"`
}

// ViewOf snapshots it
func ViewOf(it *domain.Item) View {
	v := View{
		ID:          it.ID,
		Name:        it.Name,
		Display:     DisplayName(it),
		Type:        it.Type,
		Subtype:     it.Subtype,
		Fingerprint: it.Fingerprint,
		Quantity:    1,
	}
	if it.Stackable() {
		v.Quantity = it.Durability
	}
	if it.Slot != nil {
		slot := *it.Slot
		v.Slot = &slot
	}
	return v
}

// Views snapshots a list in order
func Views(items []*domain.Item) []View {
	out := make([]View, 0, len(items))
	for _, it := range items {
		out = append(out, ViewOf(it))
	}
	return out
}
