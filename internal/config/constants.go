package config

const (
	// Configuration file paths
	ConfigPathGame  = "configs/game.yaml"
	ConfigPathItems = "configs/items.json"
	ConfigPathShops = "configs/shops.json"
)

// Persistence backends
const (
	PersistenceMemory   = "memory"
	PersistencePostgres = "postgres"
	PersistenceBolt     = "bolt"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultBoltPath         = "data/textrealm.db"
	DefaultCommandPrefix    = "/"
	DefaultDBMaxConns       = 20
	DefaultShutdownGraceSec = 10
)

const (
	ErrMsgInvalidPort        = "invalid PORT value: %w"
	ErrMsgPortOutOfRange     = "PORT must be between 1 and 65535, got %d"
	ErrMsgUnknownPersistence = "PERSISTENCE must be one of memory, postgres, bolt; got %q"
	ErrMsgReadTuning         = "failed to read tuning file %s: %w"
	ErrMsgParseTuning        = "failed to parse tuning file %s: %w"
	ErrMsgInvalidTuning      = "invalid tuning: %s"
)
