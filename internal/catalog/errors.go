package catalog

import "errors"

var (
	ErrItemNotFound    = errors.New("catalog item not found")
	ErrInvalidKind     = errors.New("catalog item kind must be service or product")
	ErrInvalidCategory = errors.New("categoryId must be a UUID")
)
