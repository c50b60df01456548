package validation

const (
	ErrMsgReadSchema    = "read schema %s: %w"
	ErrMsgParseSchema   = "parse schema %s: %w"
	ErrMsgCompileSchema = "compile schema %s: %w"
	ErrMsgParseData     = "parse document: %w"
)
