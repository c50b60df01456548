package bootstrap

import (
	"github.com/osse101/TextRealm_Go/internal/character"
	"github.com/osse101/TextRealm_Go/internal/config"
	"github.com/osse101/TextRealm_Go/internal/game"
)

// GameConfig merges the process settings with the balance file
func GameConfig(cfg *config.Config, t config.Tuning) game.Config {
	return game.Config{
		CommandPrefix: cfg.CommandPrefix,
		TickDuration:  t.Tick(),
		Cooldowns:     t.Cooldowns,
		DevMode:       cfg.DevMode,

		ResupplyEvery:  t.Intervals.Resupply,
		ReshuffleEvery: t.Intervals.Reshuffle,
		AutosaveEvery:  t.Intervals.Autosave,

		ContrabandSubtypes: t.Contraband.Subtypes,
		ContrabandExp:      t.Contraband.ExpBonus,

		Capacity:      t.InventoryCapacity,
		StartingCash:  t.StartingCash,
		StartLocation: t.StartLocation,

		ItemsPath: cfg.ItemsConfigPath,
		ShopsPath: cfg.ShopsConfigPath,

		Workers:   t.Persistence.Workers,
		QueueSize: t.Persistence.QueueSize,
		Cache:     character.CacheConfig{Size: CharacterCacheSize, TTL: CharacterCacheTTL},
	}
}
