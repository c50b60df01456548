package item

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// ErrDuplicateID is returned when two templates share an id
var ErrDuplicateID = errors.New("duplicate item id")

// Catalog owns the template registry, the instancing factory and the world drop registry.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]*domain.Template

	dropsMu sync.Mutex
	drops   map[domain.LocationKey][]*domain.Item

	newFingerprint func() string
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		templates:      make(map[string]*domain.Template),
		drops:          make(map[domain.LocationKey][]*domain.Item),
		newFingerprint: uuid.NewString,
	}
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Register adds templates. Ids are compared lower-cased.
func (c *Catalog) Register(templates ...domain.Template) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range templates {
		key := normalizeID(t.ID)
		if key == "" {
			return fmt.Errorf(ErrFmtRegisterTemplateFails, t.Name, ErrInvalidConfig)
		}
		if _, exists := c.templates[key]; exists {
			return fmt.Errorf(ErrFmtDuplicateTemplate, ErrDuplicateID, key)
		}
		tmpl := t
		tmpl.ID = key
		c.templates[key] = &tmpl
	}
	return nil
}

// Template returns a copy of the live template for id
func (c *Catalog) Template(id string) (*domain.Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.templates[normalizeID(id)]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

// Templates returns copies of every template, ordered by id
func (c *Catalog) Templates() []domain.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Template, 0, len(c.templates))
	for _, id := range slices.Sorted(maps.Keys(c.templates)) {
		out = append(out, *c.templates[id])
	}
	return out
}

// Instantiate builds a fresh instance of templateID. Unknown ids return nil, false
// and touch nothing.
func (c *Catalog) Instantiate(templateID string, modifiers map[string]any, persistenceKey *string) (*domain.Item, bool) {
	c.mu.RLock()
	tmpl, ok := c.templates[normalizeID(templateID)]
	if !ok {
		c.mu.RUnlock()
		return nil, false
	}
	stats := tmpl.Stats
	it := &domain.Item{
		ID:          tmpl.ID,
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Type:        tmpl.Type,
		Subtype:     tmpl.Subtype,
		Stats:       stats,
	}
	c.mu.RUnlock()

	it.Modifiers = maps.Clone(modifiers)
	it.Durability = initialDurability(it.Stats)
	applyModifiers(it)
	it.Fingerprint = c.newFingerprint()
	it.PersistenceKey = persistenceKey
	return it, true
}

func initialDurability(s domain.Stats) int {
	if s.DurabilityMax > 0 {
		return s.DurabilityMax
	}
	if s.Stackable {
		return 1
	}
	return 0
}

// ReshufflePrices redraws each bounded template price uniformly in [PriceMin, PriceMax]
func (c *Catalog) ReshufflePrices(rng *rand.Rand) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for _, id := range slices.Sorted(maps.Keys(c.templates)) {
		s := &c.templates[id].Stats
		if s.PriceMax <= 0 || s.PriceMin > s.PriceMax {
			continue
		}
		s.Price = s.PriceMin + rng.IntN(s.PriceMax-s.PriceMin+1)
		changed++
	}
	return changed
}

// Export converts an owned item into its persistable record
func (c *Catalog) Export(it *domain.Item) domain.ItemRecord {
	return domain.ItemRecord{
		TemplateID: it.ID,
		Modifiers:  maps.Clone(it.Modifiers),
		Durability: it.Durability,
		Slot:       it.Slot,
	}
}

// FromRecord re-instantiates a stored record under its persistence key
func (c *Catalog) FromRecord(rec domain.ItemRecord, persistenceKey *string) (*domain.Item, bool) {
	it, ok := c.Instantiate(rec.TemplateID, rec.Modifiers, persistenceKey)
	if !ok {
		return nil, false
	}
	it.Durability = rec.Durability
	it.Slot = rec.Slot
	return it, true
}
