package shop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/item"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func shippedCatalog(t *testing.T) *item.Catalog {
	t.Helper()
	catalog, err := item.LoadCatalog(context.Background(), item.NewLoader(), "../../configs/items.json")
	require.NoError(t, err)
	return catalog
}

func TestLoadRegistry_ShippedConfig(t *testing.T) {
	catalog := shippedCatalog(t)

	registry, err := LoadRegistry(context.Background(), NewLoader(), "../../configs/shops.json", catalog)
	require.NoError(t, err)
	require.Len(t, registry.All(), 3)

	bakery, ok := registry.At(domain.LocationKey{MapID: "town", Y: 2, X: 3})
	require.True(t, ok)
	assert.Equal(t, "bakery", bakery.ID)
	assert.NotEmpty(t, bakery.Fingerprint)
	require.Len(t, bakery.Sell.List, 2)
	assert.Equal(t, domain.InfiniteQuantity, bakery.Sell.List[0].ShopQuantity)
	assert.Equal(t, 10, bakery.Sell.List[1].ShopQuantity)
	assert.Nil(t, bakery.Supply)

	smithy, ok := registry.Get("smithy")
	require.True(t, ok)
	require.NotNil(t, smithy.Supply)
	assert.True(t, smithy.Supply.UniqueItems)
	assert.Equal(t, Range{1, 2}, smithy.Supply.NumberOfItems)
	assert.InDelta(t, 1.2, smithy.Sell.PriceMultiplier, 1e-9)

	alley, ok := registry.Get("back_alley")
	require.True(t, ok)
	assert.False(t, alley.Sell.Enabled)
	assert.Equal(t, DefaultPriceMultiplier, alley.Sell.PriceMultiplier)
	assert.Equal(t, []string{"moonshine", "lockpick"}, alley.Buy.List)
}

func TestShopLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("schema rejects missing location", func(t *testing.T) {
		path := createTempFile(t, `{"shops": [{"id": "x", "name": "X"}]}`)
		_, err := loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := createTempFile(t, `{"shops": [`)
		_, err := loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse shops config")
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/shops.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read shops config file")
	})
}

func TestShopLoader_Validate(t *testing.T) {
	loader := NewLoader()
	catalog := newTestCatalog(t)
	loc := domain.LocationKey{MapID: "town", Y: 1, X: 1}
	neg := -2
	zero := 0

	tests := []struct {
		name   string
		config *Config
	}{
		{"nil config", nil},
		{"empty id", &Config{Shops: []Def{{Name: "A", Location: loc}}}},
		{"duplicate id", &Config{Shops: []Def{{ID: "a", Location: loc}, {ID: "a", Location: loc}}}},
		{"unknown sell item", &Config{Shops: []Def{{ID: "a", Sell: SellDef{Items: []EntryDef{{ID: "ghost"}}}}}}},
		{"bad shop quantity", &Config{Shops: []Def{{ID: "a", Sell: SellDef{Items: []EntryDef{{ID: "bread", ShopQuantity: &neg}}}}}}},
		{"zero shop quantity", &Config{Shops: []Def{{ID: "a", Sell: SellDef{Items: []EntryDef{{ID: "bread", ShopQuantity: &zero}}}}}}},
		{"unknown supply item", &Config{Shops: []Def{{ID: "a", Supply: &SupplyDef{
			Items: []SupplyItem{{ID: "ghost", Quantity: Range{1, 1}}}, NumberOfItems: Range{1, 1},
		}}}}},
		{"inverted number range", &Config{Shops: []Def{{ID: "a", Supply: &SupplyDef{
			Items: []SupplyItem{{ID: "bread", Quantity: Range{1, 1}}}, NumberOfItems: Range{2, 1},
		}}}}},
		{"zero quantity range", &Config{Shops: []Def{{ID: "a", Supply: &SupplyDef{
			Items: []SupplyItem{{ID: "bread", Quantity: Range{0, 1}}}, NumberOfItems: Range{1, 1},
		}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, loader.Validate(tt.config, catalog), ErrInvalidConfig)
		})
	}
}

func TestBuild_DuplicateLocation(t *testing.T) {
	catalog := newTestCatalog(t)
	loc := domain.LocationKey{MapID: "town", Y: 1, X: 1}
	config := &Config{Shops: []Def{{ID: "a", Location: loc}, {ID: "b", Location: loc}}}

	_, err := Build(config, catalog)
	assert.ErrorIs(t, err, ErrDuplicateShop)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := &Shop{ID: "a", Location: domain.LocationKey{MapID: "m", Y: 0, X: 0}}
	b := &Shop{ID: "b", Location: domain.LocationKey{MapID: "m", Y: 0, X: 1}}
	require.NoError(t, r.Add(a))
	require.NoError(t, r.Add(b))

	got, ok := r.At(b.Location)
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = r.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []*Shop{a, b}, r.All())
	assert.ErrorIs(t, r.Add(&Shop{ID: "a"}), ErrDuplicateShop)
}
