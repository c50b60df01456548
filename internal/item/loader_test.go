package item

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		tmpFile := createTempFile(t, `{
			"version": "1.0",
			"description": "Test items",
			"items": [
				{"id": "bread", "name": "bread", "type": "food", "stats": {"price": 5, "stackable": true}}
			]
		}`)

		config, err := loader.Load(tmpFile)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		require.Len(t, config.Items, 1)
		assert.Equal(t, "bread", config.Items[0].ID)
		assert.True(t, config.Items[0].Stats.Stackable)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read items config file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{invalid json}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse items config")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{"items": [{"id": "bread", "name": "bread", "type": "food", "stats": {"price": -1}}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()
	valid := Def{ID: "bread", Name: "bread", Type: "food", Stats: domain.Stats{Price: 5}}

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{"valid config", &Config{Items: []Def{valid}}, nil},
		{"nil config", nil, ErrInvalidConfig},
		{"no items", &Config{}, ErrInvalidConfig},
		{"empty id", &Config{Items: []Def{{Name: "x"}}}, ErrInvalidConfig},
		{"duplicate id ignores case", &Config{Items: []Def{valid, {ID: "BREAD", Name: "b"}}}, ErrDuplicateID},
		{"empty name", &Config{Items: []Def{{ID: "x"}}}, ErrInvalidConfig},
		{"price range inverted", &Config{Items: []Def{{ID: "x", Name: "x", Stats: domain.Stats{PriceMin: 9, PriceMax: 3}}}}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoadCatalog_ShippedConfig(t *testing.T) {
	catalog, err := LoadCatalog(context.Background(), NewLoader(), filepath.Join("..", "..", "configs", ConfigFileName))
	require.NoError(t, err)

	bread, ok := catalog.Template("bread")
	require.True(t, ok)
	assert.Equal(t, 5, bread.Stats.Price)
}

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
