package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func openTemp(t *testing.T) *ItemRepository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestItemRepository_CreateListOrder(t *testing.T) {
	ctx := context.Background()
	repo := openTemp(t)

	var keys []string
	for _, id := range []string{"bread", "apple", "arrow", "short_sword"} {
		key, err := repo.Create(ctx, "alice", domain.ItemRecord{TemplateID: id, Durability: 1})
		require.NoError(t, err)
		keys = append(keys, key)
	}

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 4)
	for i, it := range items {
		assert.Equal(t, keys[i], it.Key)
	}
	assert.Equal(t, "short_sword", items[3].Record.TemplateID)

	other, err := repo.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestItemRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := openTemp(t)
	slot := "head"

	first, err := repo.Create(ctx, "alice", domain.ItemRecord{TemplateID: "bread", Durability: 3})
	require.NoError(t, err)
	second, err := repo.Create(ctx, "alice", domain.ItemRecord{TemplateID: "leather_cap", Durability: 10})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, "alice", first, domain.ItemRecord{
		TemplateID: "bread",
		Durability: 1,
		Modifiers:  map[string]any{"name": "Stale Bread"},
	}))
	require.NoError(t, repo.Update(ctx, "alice", second, domain.ItemRecord{TemplateID: "leather_cap", Durability: 10, Slot: &slot}))

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].Key, "update keeps creation order")
	assert.Equal(t, 1, items[0].Record.Durability)
	assert.Equal(t, "Stale Bread", items[0].Record.Modifiers["name"])
	require.NotNil(t, items[1].Record.Slot)
	assert.Equal(t, "head", *items[1].Record.Slot)

	require.NoError(t, repo.Delete(ctx, "alice", first))
	items, err = repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second, items[0].Key)
}

func TestItemRepository_Missing(t *testing.T) {
	ctx := context.Background()
	repo := openTemp(t)

	err := repo.Update(ctx, "ghost", "nope", domain.ItemRecord{TemplateID: "bread"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = repo.Delete(ctx, "ghost", "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = repo.Create(ctx, "ghost", domain.ItemRecord{TemplateID: "bread"})
	require.NoError(t, err)
	err = repo.Delete(ctx, "ghost", "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestItemRepository_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "items.db")

	repo, err := Open(path)
	require.NoError(t, err)
	key, err := repo.Create(ctx, "alice", domain.ItemRecord{TemplateID: "arrow", Durability: 12})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = Open(path)
	require.NoError(t, err)
	defer repo.Close()

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, key, items[0].Key)
	assert.Equal(t, 12, items[0].Record.Durability)
}
