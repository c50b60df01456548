package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9

	// ServiceName tags every log line
	ServiceName = "textrealm"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingTextRealm   = "Starting TextRealm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
	ErrMsgFailedRegisterMetrics  = "failed to register metrics collector"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// CharacterCacheSize bounds the offline character cache
	CharacterCacheSize = 1024

	// CharacterCacheTTL evicts cached offline characters
	CharacterCacheTTL = 30 * time.Minute
)

const (
	LogMsgStorageSelected = "Storage selected"

	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to migrate database"
	ErrMsgFailedOpenBolt        = "failed to open bolt store"
	ErrMsgUnknownPersistence    = "unknown persistence backend %q"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgGameShutdownFailed   = "Game shutdown failed"
	LogMsgStorageCloseFailed   = "Storage close failed"
	LogMsgServerStopped        = "Server stopped"
)
