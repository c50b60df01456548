package sse

import "time"

const (
	// InboxSize buffers game events waiting for the fan-out loop
	InboxSize = 256

	// SubscriberBuffer is each observer's queue; a full queue drops frames
	SubscriberBuffer = 64

	// BacklogSize is how many recent frames a reconnecting observer can replay
	BacklogSize = 32

	// KeepaliveInterval is how often an idle stream gets a comment line
	KeepaliveInterval = 30 * time.Second

	// RetryMillis is the reconnect delay suggested to clients
	RetryMillis = 3000
)

const (
	// EventTypeConnected opens every stream
	EventTypeConnected = "observer:connected"

	// QueryParamTypes filters the stream to a comma-separated list of event types
	QueryParamTypes = "types"

	// HeaderLastEventID is sent by reconnecting EventSource clients
	HeaderLastEventID = "Last-Event-ID"
)

const (
	ErrMsgStreamingUnsupported = "streaming unsupported"
)

// Log messages
const (
	LogMsgObserverConnected    = "Observer connected"
	LogMsgObserverDisconnected = "Observer disconnected"
	LogMsgWriteError           = "Failed to write observer frame"
	LogMsgInboxFull            = "Observer inbox full, dropping event"
	LogMsgSubscriberLagging    = "Observer lagging, dropping frame"
)
