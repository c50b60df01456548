package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVar = "TEXTREALM_TEST_VAR"

func TestGetEnvHelpers(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{"int parses", "42", func(t *testing.T) { assert.Equal(t, 42, getEnvAsInt(testVar, 7)) }},
		{"int zero is a value", "0", func(t *testing.T) { assert.Equal(t, 0, getEnvAsInt(testVar, 7)) }},
		{"int float falls back", "4.5", func(t *testing.T) { assert.Equal(t, 7, getEnvAsInt(testVar, 7)) }},
		{"int empty falls back", "", func(t *testing.T) { assert.Equal(t, 7, getEnvAsInt(testVar, 7)) }},
		{"duration parses", "1m30s", func(t *testing.T) {
			assert.Equal(t, 90*time.Second, getEnvAsDuration(testVar, time.Second))
		}},
		{"duration bare number falls back", "30", func(t *testing.T) {
			assert.Equal(t, time.Second, getEnvAsDuration(testVar, time.Second))
		}},
		{"bool parses", "1", func(t *testing.T) { assert.True(t, getEnvAsBool(testVar, false)) }},
		{"bool garbage falls back", "yes", func(t *testing.T) { assert.True(t, getEnvAsBool(testVar, true)) }},
		{"string empty falls back", "", func(t *testing.T) { assert.Equal(t, "d", getEnv(testVar, "d")) }},
		{"list trims and drops blanks", " a ,b,, c", func(t *testing.T) {
			assert.Equal(t, []string{"a", "b", "c"}, getEnvAsList(testVar))
		}},
		{"list empty is nil", "", func(t *testing.T) { assert.Nil(t, getEnvAsList(testVar)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(testVar, tt.value)
			tt.check(t)
		})
	}
}

func TestLoad_DatabasePool(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("garbage keeps defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "many")
		t.Setenv("DB_MAX_CONN_LIFETIME", "forever")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})
}
