package command

// DefaultPrefix starts every command token
const DefaultPrefix = "/"

// Rule names understood by the registry. Resolver rules are registered at runtime.
const (
	RuleRequired = "required"
	RuleMinLen   = "minlen"
	RuleMaxLen   = "maxlen"
	RuleInt      = "int"

	// TagInteger is the validator tag behind RuleInt
	TagInteger = "integer"

	// RuleOnline resolves a player name to an online character
	RuleOnline = "online"
)

// Dispatch result labels for metrics
const (
	ResultOK    = "ok"
	ResultPanic = "panic"
)

// ==================== Error Messages ====================

const (
	ErrMsgDuplicateCommand = "duplicate command or alias"
	ErrMsgEmptyCommand     = "command has no name"
	ErrMsgNilHandler       = "command has no handler"
	ErrMsgUnknownRule      = "unknown rule"
	ErrMsgBadRuleArg       = "rule argument must be a non-negative integer"

	ErrFmtUnknownCommand = "%s: %s"
	ErrFmtParam          = "%s: %s: %v"
)

// User-facing messages
const (
	MsgUnknownCommand     = "Unknown command %s."
	MsgDidYouMean         = " Did you mean %s?"
	MsgMissingParam       = "Missing %s. Usage: %s"
	MsgInvalidLength      = "%s has an invalid length."
	MsgInvalidParam       = "%s is not valid."
	MsgParamNotFound      = "%s not found: %s"
	MsgNotAvailable       = "That is not available."
	MsgNotLoggedIn        = "You must be logged in to do that."
	MsgPersistenceFailure = "Something went wrong saving your progress. Please try again later."
	MsgInternalError      = "Something went wrong."
)

// ==================== Log Messages ====================

const (
	LogMsgDispatch        = "Dispatching command"
	LogMsgCommandRejected = "Command rejected"
	LogMsgCommandFailed   = "Command failed"
	LogMsgHandlerPanic    = "Command handler panicked"
)
