package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Profiles stores the non-item state of characters. Load returns
// domain.ErrNotFound for a character that was never saved; Save upserts.
type Profiles interface {
	Load(ctx context.Context, characterID string) (domain.ProfileRecord, error)
	Save(ctx context.Context, characterID string, rec domain.ProfileRecord) error
}

// MemoryProfiles is an in-process Profiles store
type MemoryProfiles struct {
	mu      sync.RWMutex
	records map[string]domain.ProfileRecord
}

// NewMemoryProfiles creates an empty store
func NewMemoryProfiles() *MemoryProfiles {
	return &MemoryProfiles{records: make(map[string]domain.ProfileRecord)}
}

func (m *MemoryProfiles) Load(_ context.Context, characterID string) (domain.ProfileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[characterID]
	if !ok {
		return domain.ProfileRecord{}, fmt.Errorf("%w: profile %s", domain.ErrNotFound, characterID)
	}
	return rec, nil
}

func (m *MemoryProfiles) Save(_ context.Context, characterID string, rec domain.ProfileRecord) error {
	m.mu.Lock()
	m.records[characterID] = rec
	m.mu.Unlock()
	return nil
}
