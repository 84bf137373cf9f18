package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidField    = errors.New("invalid field")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyIDs        = errors.New("IDs list cannot be empty")
	ErrDuplicateIDs    = errors.New("IDs list contains duplicates")
)
