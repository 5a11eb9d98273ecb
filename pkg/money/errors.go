package money

import "errors"

// Sentinel errors for the money package.
var (
	// ErrInvalidConventions is returned when FracDigits is out of range or the
	// decimal point is missing while fractional digits are requested.
	ErrInvalidConventions = errors.New("money: invalid locale conventions")

	// ErrInvalidAmount is returned when an amount is not finite, has an
	// unsupported type or is a string that does not parse as a number.
	ErrInvalidAmount = errors.New("money: invalid amount")
)
