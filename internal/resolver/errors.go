package resolver

import "errors"

var (
	// ErrUnknownKey is returned when the requested key is not one of the four recognized names.
	ErrUnknownKey = errors.New("unknown configuration key")
)
