package domain

// Client event types. Every outbound frame is {type, payload}.
const (
	EventChatSay     = "chat:say"
	EventChatWhisper = "chat:whisper"
	EventChatGlobal  = "chat:global"
	EventChatError   = "chat:error"
	EventChatInfo    = "chat:info"

	EventShopList   = "shop:list"
	EventShopBought = "shop:bought"
	EventShopSold   = "shop:sold"

	EventInventoryUpdate = "inventory:update"
	EventWorldItems      = "world:items"
	EventWorldMoved      = "world:moved"
	EventWorldLook       = "world:look"

	EventSessionWelcome      = "session:welcome"
	EventSessionRemoteLogout = "session:remote-logout"

	EventHelpList = "help:list"
)

// Domain event bus types, following <entity>.<action>.
const (
	EventTypeItemBought     = "item.bought"
	EventTypeItemSold       = "item.sold"
	EventTypeSessionOpened  = "session.opened"
	EventTypeSessionClosed  = "session.closed"
	EventTypeShopResupplied = "shop.resupplied"
)

// Cooldown action keys.
const (
	ActionChat   = "chat"
	ActionGlobal = "global"
	ActionTake   = "take"
)
