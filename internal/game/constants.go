package game

// ==================== Defaults ====================

const (
	// DefaultWorkers sizes the persistence pool when unset. With one worker,
	// saves of the same item apply in queue order.
	DefaultWorkers = 1

	// DefaultQueueSize bounds queued persistence jobs when unset
	DefaultQueueSize = 256

	// MaxMessageLength caps chat messages
	MaxMessageLength = 280

	// ClockJobName names the scheduled tick job
	ClockJobName = "game-tick"
)

// Command names
const (
	CmdSay       = "say"
	CmdWhisper   = "whisper"
	CmdGlobal    = "global"
	CmdIgnore    = "ignore"
	CmdInventory = "inventory"
	CmdDrop      = "drop"
	CmdTake      = "take"
	CmdLook      = "look"
	CmdShop      = "shop"
	CmdBuy       = "buy"
	CmdSell      = "sell"
	CmdMove      = "move"
	CmdHelp      = "help"
)

// Param names
const (
	ParamMessage     = "Message"
	ParamPlayer      = "Player"
	ParamFingerprint = "Fingerprint"
	ParamAmount      = "Amount"
	ParamName        = "Name"
	ParamIndex       = "Index"
	ParamItemID      = "ItemId"
	ParamMapID       = "MapId"
	ParamY           = "Y"
	ParamX           = "X"
)

// ==================== User Messages ====================

const (
	MsgIgnoring    = "You are now ignoring %s."
	MsgUnignored   = "You are no longer ignoring %s."
	MsgDropped     = "You drop %s."
	MsgPickedUp    = "You pick up %s."
	MsgArrives     = "%s arrives."
	MsgLeaves      = "%s leaves."
	MsgWelcome     = "Welcome to TextRealm. Type %shelp for a list of commands."
	MsgWelcomeBack = "Welcome, %s."
)

// ==================== Error Messages ====================

const (
	ErrMsgNoShopHere      = "no shop here"
	ErrMsgSelfIgnore      = "you cannot ignore yourself"
	ErrMsgBadAmount       = "amount must be a positive number"
	ErrMsgAlreadyLoggedIn = "session is already logged in"
	ErrMsgNotBooted       = "game has not booted"
	ErrFmtUnknownSession  = "%w: session %s"
	ErrFmtNoItemHeld      = "%w: you have no item %s"
	ErrFmtPlayerOffline   = "%w: nobody called %s is online"
	ErrFmtLoadCatalog     = "failed to load item catalog: %w"
	ErrFmtLoadShops       = "failed to load shops: %w"
	ErrFmtPersistCreate   = "failed to create item record for %s: %w"
	ErrFmtPersistUpdate   = "failed to update item record %s: %w"
	ErrFmtPersistDelete   = "failed to delete item record %s: %w"
	ErrFmtPersistProfile  = "failed to save profile for %s: %w"
	ErrFmtPersistEnqueue  = "failed to queue %s job: %w"
	ErrFmtShutdownTimeout = "shutdown deadline exceeded: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBooting           = "Booting game"
	LogMsgBooted            = "Game booted"
	LogMsgWorldLoaded       = "World loaded"
	LogMsgClockStarted      = "Game clock started"
	LogMsgClockDisabled     = "Game clock disabled"
	LogMsgShuttingDown      = "Shutting down game"
	LogMsgShutdownComplete  = "Game shut down"
	LogMsgSessionOpened     = "Session opened"
	LogMsgSessionClosed     = "Session closed"
	LogMsgLogin             = "Player logged in"
	LogMsgLoginFailed       = "Player login failed"
	LogMsgPersistFailed     = "Persistence job failed"
	LogMsgPersistQueueFull  = "Persistence job dropped"
	LogMsgOrphanRecord      = "Item left inventory before its record was created, deleting record"
	LogMsgResupplied        = "Shops resupplied"
	LogMsgPricesReshuffled  = "Prices reshuffled"
	LogMsgAutosave          = "Autosave queued"
	LogMsgPublishFailed     = "Failed to publish session event"
	LogMsgUnknownSessionCmd = "Command from unknown session ignored"
)

// Persistence operations, for logs and errors
const (
	opCreate  = "create"
	opUpdate  = "update"
	opDelete  = "delete"
	opProfile = "profile"
)
