package bolt

const (
	// RootBucket holds one nested bucket per character
	RootBucket = "characters"

	// ProfileBucket maps character id to its profile record
	ProfileBucket = "profiles"

	// FileMode for the bolt database file
	FileMode = 0o600
)

// Error Message Constants
const (
	ErrMsgOpenFailed       = "failed to open bolt database %s: %w"
	ErrMsgInitFailed       = "failed to initialize bolt buckets: %w"
	ErrMsgEncodeFailed     = "failed to encode item record: %w"
	ErrMsgDecodeFailed     = "failed to decode item record %s: %w"
	ErrMsgCreateItemFailed = "failed to create item record: %w"
	ErrMsgUpdateItemFailed = "failed to update item record %s: %w"
	ErrMsgDeleteItemFailed = "failed to delete item record %s: %w"
	ErrMsgListItemsFailed  = "failed to list item records for %s: %w"

	ErrMsgLoadProfileFailed = "failed to load profile %s: %w"
	ErrMsgSaveProfileFailed = "failed to save profile %s: %w"
)
