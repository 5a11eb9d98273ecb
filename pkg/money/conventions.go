package money

import "fmt"

// MaxFracDigits is the largest number of fractional digits accepted.
const MaxFracDigits = 10

// Conventions describes how monetary amounts are written for a locale.
// Field names follow the POSIX localeconv() members they mirror.
// A Conventions value is treated as a read-only snapshot.
type Conventions struct {
	DecimalPoint   string `yaml:"decimal_point" json:"decimal_point"`
	ThousandsSep   string `yaml:"thousands_sep" json:"thousands_sep"`
	CurrencySymbol string `yaml:"currency_symbol" json:"currency_symbol"`
	FracDigits     int    `yaml:"frac_digits" json:"frac_digits"`

	// PositiveCSPrecedes places the symbol before non-negative amounts (p_cs_precedes).
	PositiveCSPrecedes bool `yaml:"p_cs_precedes" json:"p_cs_precedes"`
	// NegativeCSPrecedes places the symbol before negative amounts (n_cs_precedes).
	NegativeCSPrecedes bool `yaml:"n_cs_precedes" json:"n_cs_precedes"`
	// PositiveSepBySpace puts a space between symbol and non-negative amounts (p_sep_by_space).
	PositiveSepBySpace bool `yaml:"p_sep_by_space" json:"p_sep_by_space"`
	// NegativeSepBySpace puts a space between symbol and negative amounts (n_sep_by_space).
	NegativeSepBySpace bool `yaml:"n_sep_by_space" json:"n_sep_by_space"`
}

// DefaultConventions returns en_US conventions: "$1,234.50".
func DefaultConventions() Conventions {
	return Conventions{
		DecimalPoint:       ".",
		ThousandsSep:       ",",
		CurrencySymbol:     "$",
		FracDigits:         2,
		PositiveCSPrecedes: true,
		NegativeCSPrecedes: true,
	}
}

// Validate reports whether the conventions can be used for formatting.
func (c Conventions) Validate() error {
	if c.FracDigits < 0 || c.FracDigits > MaxFracDigits {
		return fmt.Errorf("%w: frac digits %d out of range [0, %d]", ErrInvalidConventions, c.FracDigits, MaxFracDigits)
	}
	if c.FracDigits > 0 && c.DecimalPoint == "" {
		return fmt.Errorf("%w: decimal point is required when frac digits is %d", ErrInvalidConventions, c.FracDigits)
	}
	return nil
}

// signed returns the placement flags for the sign of amount.
func (c Conventions) signed(negative bool) (precedes, space bool) {
	if negative {
		return c.NegativeCSPrecedes, c.NegativeSepBySpace
	}
	return c.PositiveCSPrecedes, c.PositiveSepBySpace
}
