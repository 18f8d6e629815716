package temporal

import "errors"

// ErrInvalidWindow indicates a window whose end precedes its start or whose
// bounds are not finite.
var ErrInvalidWindow = errors.New("invalid time window")
