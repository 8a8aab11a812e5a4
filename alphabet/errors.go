package alphabet

import "errors"

// ErrTooFewSymbols indicates the source contained fewer than 2 distinct
// symbols (an empty source included). The message text is stable: callers
// ported from other implementations of this library match on it.
var ErrTooFewSymbols = errors.New("Invalid alphabet string. Found less than 2 unique chars")
