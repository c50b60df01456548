package notify

const (
	ErrMsgUnknownSession = "unknown session"
	ErrMsgEmptyUserID    = "user id is empty"
)

const (
	LogMsgSessionConnected     = "Session connected"
	LogMsgSessionAuthenticated = "Session authenticated"
	LogMsgSessionReplaced      = "Prior session replaced by new login"
	LogMsgSessionDisconnected  = "Session disconnected"
	LogMsgSendFailed           = "Send failed, dropping session"
	LogMsgRemoteLogoutFailed   = "Remote logout notice not delivered"
)

// RemoteLogoutReason is sent to a session replaced by a newer login
const RemoteLogoutReason = "logged in from another session"
