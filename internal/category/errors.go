package category

import "errors"

var ErrInvalidParent = errors.New("parentId must be a UUID")
