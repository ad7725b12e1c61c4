package layout

import "errors"

var (
	// ErrConfiguration is returned by New for unusable parameters.
	ErrConfiguration = errors.New("invalid layout configuration")
	// ErrLayoutImpossible is returned when a required word finds no valid
	// position within the configured bounds.
	ErrLayoutImpossible = errors.New("layout impossible")
)
