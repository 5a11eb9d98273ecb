package locale

import "errors"

// Sentinel errors for the locale package.
var (
	// ErrUnknownLocale is returned when a locale name cannot be parsed or no
	// preset exists for its language.
	ErrUnknownLocale = errors.New("locale: unknown locale")

	// ErrInvalidPresets is returned when the embedded presets cannot be decoded
	// or contain invalid, duplicate or empty entries.
	ErrInvalidPresets = errors.New("locale: invalid presets")
)
