package digest

import "errors"

// Define errors
var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilClock  = errors.New("clock cannot be nil")
	ErrNilInput  = errors.New("input cannot be nil")
	ErrNilDiff   = errors.New("diff cannot be nil")
)
