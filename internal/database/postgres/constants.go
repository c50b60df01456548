package postgres

// Error Message Constants
const (
	ErrMsgInsertItemFailed = "failed to insert item record: %w"
	ErrMsgUpdateItemFailed = "failed to update item record %s: %w"
	ErrMsgDeleteItemFailed = "failed to delete item record %s: %w"
	ErrMsgListItemsFailed  = "failed to list item records for %s: %w"
	ErrMsgScanItemFailed   = "failed to scan item record: %w"

	ErrMsgEncodeModifiersFailed = "failed to encode modifiers: %w"
	ErrMsgDecodeModifiersFailed = "failed to decode modifiers: %w"

	ErrMsgLoadProfileFailed = "failed to load profile %s: %w"
	ErrMsgSaveProfileFailed = "failed to save profile %s: %w"
)
