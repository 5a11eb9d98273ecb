package filters

import "errors"

// Sentinel errors for the filters package.
var (
	// ErrIndexOutOfRange is returned when a collection index is outside its bounds.
	ErrIndexOutOfRange = errors.New("filters: index out of range")

	// ErrInvalidPaymentType is returned when a payment type is not in the known set of card icons.
	ErrInvalidPaymentType = errors.New("filters: invalid payment type")

	// ErrInvalidJSON is returned when a value cannot be encoded as JSON.
	ErrInvalidJSON = errors.New("filters: value cannot be encoded as json")
)
