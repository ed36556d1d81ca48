package menu

import "errors"

// Domain errors for catalog items
var (
	ErrEmptyName          = errors.New("item name cannot be empty")
	ErrNegativePrice      = errors.New("item price cannot be negative")
	ErrNegativePopularity = errors.New("item popularity cannot be negative")
	ErrInvalidKind        = errors.New("item kind must be food or drink")
)
