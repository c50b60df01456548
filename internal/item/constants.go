package item

// ==================== Configuration ====================

const (
	// ConfigFileName is the name of the items configuration file
	ConfigFileName = "items.json"

	// ItemsSchemaPath is the schema path inside configs.Schemas
	ItemsSchemaPath = "schemas/items.schema.json"
)

// ==================== Modifier Keys ====================

// Modifier keys that target instance fields rather than stats
const (
	ModifierDurability  = "durability"
	ModifierName        = "name"
	ModifierDescription = "description"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty      = "%w: item at index %d has empty id"
	ErrFmtItemHasEmptyName      = "%w: item '%s' has empty name"
	ErrFmtItemNegativePrice     = "%w: item '%s' has negative price"
	ErrFmtItemPriceRange        = "%w: item '%s' has priceMin above priceMax"
	ErrFmtItemDurabilityRange   = "%w: item '%s' has durabilityMin above durabilityMax"
	ErrFmtDuplicateTemplate     = "%w: '%s'"
	ErrFmtRegisterTemplateFails = "failed to register template '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgTemplatesLoaded   = "Item templates loaded"
	LogMsgPricesReshuffled  = "Item prices reshuffled"
	LogMsgModifierIgnored   = "Item modifier ignored"
	LogMsgItemDropped       = "Item dropped"
	LogMsgItemPickedUp      = "Item picked up"
	LogMsgTemplateVanished  = "Template missing for ground item"
)
