package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func TestMemoryProfiles_SaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfiles()

	_, err := repo.Load(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rec := domain.ProfileRecord{Cash: 7, Exp: 3, Location: domain.LocationKey{MapID: "town", Y: 1, X: 2}}
	require.NoError(t, repo.Save(ctx, "alice", rec))
	require.NoError(t, repo.Save(ctx, "alice", domain.ProfileRecord{Cash: 4, Exp: 3, Location: rec.Location}))

	got, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Cash, "save overwrites")
	assert.Equal(t, rec.Location, got.Location)
}
