package shop

import (
	"errors"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// ErrDuplicateShop is returned when a shop id or location is registered twice
var ErrDuplicateShop = errors.New("duplicate shop")

// Registry indexes shops by id and by location
type Registry struct {
	byID       map[string]*Shop
	byLocation map[domain.LocationKey]*Shop
	order      []*Shop
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byID:       make(map[string]*Shop),
		byLocation: make(map[domain.LocationKey]*Shop),
	}
}

// Add registers a shop
func (r *Registry) Add(s *Shop) error {
	if _, ok := r.byID[s.ID]; ok {
		return fmt.Errorf(ErrFmtDuplicateShop, ErrDuplicateShop, s.ID)
	}
	if other, ok := r.byLocation[s.Location]; ok {
		return fmt.Errorf(ErrFmtDuplicateLocation, ErrDuplicateShop, other.ID, s.ID, s.Location)
	}
	r.byID[s.ID] = s
	r.byLocation[s.Location] = s
	r.order = append(r.order, s)
	return nil
}

// Get returns the shop with id
func (r *Registry) Get(id string) (*Shop, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// At returns the shop standing at loc
func (r *Registry) At(loc domain.LocationKey) (*Shop, bool) {
	s, ok := r.byLocation[loc]
	return s, ok
}

// All returns shops in registration order
func (r *Registry) All() []*Shop {
	out := make([]*Shop, len(r.order))
	copy(out, r.order)
	return out
}
