package repository

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// MemoryItems is an in-process Items store, used by default and in tests
type MemoryItems struct {
	mu      sync.RWMutex
	records map[string]map[string]domain.ItemRecord
	order   map[string][]string
}

// NewMemoryItems creates an empty store
func NewMemoryItems() *MemoryItems {
	return &MemoryItems{
		records: make(map[string]map[string]domain.ItemRecord),
		order:   make(map[string][]string),
	}
}

func (m *MemoryItems) Create(_ context.Context, characterID string, rec domain.ItemRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := uuid.NewString()
	owned, ok := m.records[characterID]
	if !ok {
		owned = make(map[string]domain.ItemRecord)
		m.records[characterID] = owned
	}
	owned[key] = cloneRecord(rec)
	m.order[characterID] = append(m.order[characterID], key)
	return key, nil
}

func (m *MemoryItems) Update(_ context.Context, characterID, key string, rec domain.ItemRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := m.records[characterID]
	if _, ok := owned[key]; !ok {
		return fmt.Errorf("%w: item record %s", domain.ErrNotFound, key)
	}
	owned[key] = cloneRecord(rec)
	return nil
}

func (m *MemoryItems) Delete(_ context.Context, characterID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := m.records[characterID]
	if _, ok := owned[key]; !ok {
		return fmt.Errorf("%w: item record %s", domain.ErrNotFound, key)
	}
	delete(owned, key)

	keys := m.order[characterID]
	for i, k := range keys {
		if k == key {
			m.order[characterID] = append(keys[:i], keys[i+1:]...)
			break
		}
	}
	return nil
}

// List returns records in creation order
func (m *MemoryItems) List(_ context.Context, characterID string) ([]StoredItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := m.records[characterID]
	out := make([]StoredItem, 0, len(owned))
	for _, key := range m.order[characterID] {
		out = append(out, StoredItem{Key: key, Record: cloneRecord(owned[key])})
	}
	return out, nil
}

func cloneRecord(rec domain.ItemRecord) domain.ItemRecord {
	rec.Modifiers = maps.Clone(rec.Modifiers)
	if rec.Slot != nil {
		slot := *rec.Slot
		rec.Slot = &slot
	}
	return rec
}
