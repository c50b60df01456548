package character

import "time"

// ==================== Defaults ====================

const (
	// DefaultCapacity is the inventory size when none is configured
	DefaultCapacity = 20

	// DefaultCacheSize is the number of offline characters kept in memory
	DefaultCacheSize = 1000

	// DefaultCacheTTL bounds how long an offline character stays cached
	DefaultCacheTTL = 10 * time.Minute

	// CacheSchemaVersion invalidates cached entries when the layout changes
	CacheSchemaVersion = "1.0"
)

// ==================== Error Messages ====================

const (
	ErrMsgEmptyUserID      = "user id is empty"
	ErrMsgLoadProfile      = "failed to load profile for %s: %w"
	ErrMsgLoadInventory    = "failed to load inventory for %s: %w"
	ErrFmtCharacterUnknown = "%w: character %s"
)

// ==================== Log Messages ====================

const (
	LogMsgCharacterLoaded   = "Character loaded"
	LogMsgRecordUndecodable = "Stored item has no template, skipping"
	LogMsgCacheHit          = "Character cache hit"
)
