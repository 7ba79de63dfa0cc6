package seaweed

import "errors"

var (
	// ErrConfig marks malformed or under-specified run configuration.
	ErrConfig = errors.New("invalid run configuration")
	// ErrDomain marks a computed quantity that left its valid envelope.
	ErrDomain = errors.New("model quantity outside valid envelope")
)
