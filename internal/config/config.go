package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	// LogDir also writes logs to a session file there; empty logs to stdout only.
	LogDir string

	ObserverAPIKey string
	TrustedProxies []string
	AllowedOrigins []string

	Persistence       string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	BoltPath          string

	GameConfigPath  string
	ItemsConfigPath string
	ShopsConfigPath string
	CommandPrefix   string

	// DevMode disables cooldowns
	DevMode         bool
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", "dev"),
		LogDir:      getEnv("LOG_DIR", ""),

		ObserverAPIKey: getEnv("OBSERVER_API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS"),

		Persistence:       getEnv("PERSISTENCE", PersistenceMemory),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "textrealm"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		BoltPath:          getEnv("BOLT_PATH", DefaultBoltPath),

		GameConfigPath:  getEnv("GAME_CONFIG", ConfigPathGame),
		ItemsConfigPath: getEnv("ITEMS_CONFIG", ConfigPathItems),
		ShopsConfigPath: getEnv("SHOPS_CONFIG", ConfigPathShops),
		CommandPrefix:   getEnv("COMMAND_PREFIX", DefaultCommandPrefix),

		DevMode:         getEnvAsBool("DEV_MODE", false),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownGraceSec*time.Second),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf(ErrMsgPortOutOfRange, port)
	}
	cfg.Port = port

	switch cfg.Persistence {
	case PersistenceMemory, PersistencePostgres, PersistenceBolt:
	default:
		return nil, fmt.Errorf(ErrMsgUnknownPersistence, cfg.Persistence)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or error
func getEnvAsInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a time.Duration variable, falling back on absence or error
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsBool parses a boolean variable, falling back on absence or error
func getEnvAsBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsProduction reports whether the environment is a production one
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}
