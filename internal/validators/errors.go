package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingProjectID  = errors.New("sanity project id is not configured")
	ErrInvalidProjectID  = errors.New("sanity project id can only contain a-z, 0-9 and dashes")
	ErrInvalidDataset    = errors.New("sanity dataset can only contain lowercase characters, numbers, underscores and dashes, and be at most 64 characters")
	ErrInvalidAPIVersion = errors.New("sanity api version must be a date in YYYY-MM-DD format, `1` or `X`")
	ErrInvalidAPIHost    = errors.New("sanity api host must include scheme and host")
)
