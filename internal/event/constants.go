package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat wraps handler failures returned by Publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	// LogMsgPublishFailed is logged by callers that treat publishing as best-effort
	LogMsgPublishFailed = "Event publish failed"
)

// ErrMsgNilPayload is returned when an event carries no payload to decode
const ErrMsgNilPayload = "nil payload for %T"
