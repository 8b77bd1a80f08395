package pricing

import "errors"

// ErrInvalidOffer marks an offer whose stored shape cannot be priced
// (unknown type or scope, missing id set, negative value).
var ErrInvalidOffer = errors.New("invalid offer")
