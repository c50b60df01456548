package shop

// ==================== Configuration ====================

const (
	// ConfigFileName is the name of the shops configuration file
	ConfigFileName = "shops.json"

	// ShopsSchemaPath is the schema path inside configs.Schemas
	ShopsSchemaPath = "schemas/shops.schema.json"

	// DefaultPriceMultiplier applies when a shop leaves its multiplier unset
	DefaultPriceMultiplier = 1.0

	// TradeUnit is the number of units a single buy or sell moves
	TradeUnit = 1
)

// ==================== Error Messages ====================

const (
	ErrMsgReadConfigFileFailed = "failed to read shops config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse shops config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgConfigNil            = "config is nil"
)

const (
	ErrFmtShopAtIndexEmpty    = "%w: shop at index %d has empty id"
	ErrFmtDuplicateShop       = "%w: id '%s'"
	ErrFmtDuplicateLocation   = "%w: '%s' and '%s' share location %s"
	ErrFmtUnknownTemplate     = "%w: shop '%s' references unknown item '%s'"
	ErrFmtBadRange            = "%w: shop '%s' has invalid %s range %v"
	ErrFmtBadShopQuantity     = "%w: shop '%s' item '%s' has invalid shopQuantity %d"
	ErrFmtEntryNotAtIndex     = "%w: no entry at index %d"
	ErrFmtEntryMismatch       = "%w: entry at index %d is '%s', not '%s'"
	ErrFmtEntryGone           = "%w: entry %s is no longer listed"
	ErrFmtInventoryItemAbsent = "%w: no item %s in inventory"
)

// ==================== Log Messages ====================

const (
	LogMsgBuyCalled        = "Shop buy called"
	LogMsgItemPurchased    = "Item purchased"
	LogMsgSellCalled       = "Shop sell called"
	LogMsgItemSold         = "Item sold"
	LogMsgShopResupplied   = "Shop resupplied"
	LogMsgSupplyUnknown    = "Supply candidate has no template, skipping"
	LogMsgShopsLoaded      = "Shops loaded"
	LogMsgPublishFailed    = "Failed to publish shop event"
	LogMsgListedNoTemplate = "Sell list entry has no template, hiding from list"
)
