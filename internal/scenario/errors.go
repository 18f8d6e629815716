package scenario

import "errors"

// ErrMalformed indicates scenario data with a missing or mis-shaped field.
var ErrMalformed = errors.New("malformed scenario")
