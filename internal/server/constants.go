package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Detector thresholds
const (
	DetectorWindow        = 5 * time.Minute
	FailedAuthAlertCount  = 5
	MaxRequestsPerWindow  = 1000
	HighRateLogEvery      = 100
	MaxRequestBodyBytes   = 1 << 20
	DefaultReadHeaderWait = 5 * time.Second
)

// Websocket settings
const (
	WriteWait       = 10 * time.Second
	PongWait        = 60 * time.Second
	PingPeriod      = (PongWait * 9) / 10
	MaxFrameBytes   = 4096
	SendBufferSize  = 64
	ReadBufferSize  = 1024
	WriteBufferSize = 1024
)

// Client frame types
const (
	FrameLogin   = "login"
	FrameCommand = "command"
)

// QueryParamToken optionally logs the socket in at upgrade time
const QueryParamToken = "token"

// Messages sent back over the socket
const (
	MsgBadFrame     = "Could not read that message."
	MsgUnknownFrame = "Unknown message type %q."
	MsgLoginFailed  = "Login failed."
)

// Error messages
const (
	ErrMsgSendBufferFull = "send buffer full"
	ErrMsgEmptyToken     = "empty login token"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgUpgradeFailed    = "Websocket upgrade failed"
	LogMsgSocketOpened     = "Websocket opened"
	LogMsgSocketClosed     = "Websocket closed"
	LogMsgSocketReadError  = "Websocket closed unexpectedly"
	LogMsgSocketWriteError = "Websocket write failed"
	LogMsgBadFrame         = "Discarding malformed frame"
	LogMsgLoginFailed      = "Socket login failed"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Paths skipped by request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
