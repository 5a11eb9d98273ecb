// Package money formats monetary amounts from explicit locale conventions.
//
// Conventions mirrors the monetary part of POSIX localeconv(): decimal point,
// thousands separator, fractional digits, currency symbol and the sign-dependent
// placement flags (cs_precedes, sep_by_space). Nothing in this package reads the
// process locale; callers pass a Conventions snapshot, usually obtained from package
// locale.
//
// # Main Functions
//
// [FormatCurrency] renders an amount with its currency symbol.
// [FormatCurrencyNoTrailingZeros] does the same but drops an all-zero fraction.
// [FormatNumber] renders the grouped number alone, with a leading minus sign.
// [ParseAmount] turns loosely typed template input into a float64.
//
// # Features
//
//   - Thousands grouping in threes with any separator, including multi-byte ones
//   - Symbol placement and spacing chosen per sign, as in POSIX
//   - Half-away-from-zero rounding on the shortest decimal form of the amount
//   - Zero to [MaxFracDigits] fractional digits
//   - No global state, safe for concurrent use
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/liquidfilters/pkg/money"
//
//	c := money.DefaultConventions() // en_US
//	s, err := money.FormatCurrency(1234.5, c)
//	// Output: "$1,234.50"
//
//	s, err = money.FormatNumber(-1234.5, c)
//	// Output: "-1,234.50"
//
//	s, err = money.FormatCurrencyNoTrailingZeros(10, c)
//	// Output: "$10"
//
//	s, err = money.FormatCurrencyNoTrailingZeros(10.5, c)
//	// Output: "$10.50"
//
// # Custom Conventions
//
// Any locale can be described directly. German conventions put the symbol after
// the amount, separated by a space:
//
//	de := money.Conventions{
//	    DecimalPoint:       ",",
//	    ThousandsSep:       ".",
//	    CurrencySymbol:     "€",
//	    FracDigits:         2,
//	    PositiveSepBySpace: true,
//	    NegativeSepBySpace: true,
//	}
//	money.FormatCurrency(1234567.891, de) // "1.234.567,89 €"
//
// Conventions carry yaml and json tags named after the localeconv() members
// (decimal_point, p_cs_precedes and so on), so they can be loaded from files.
// Call [Conventions.Validate] on values that come from outside the program.
//
// # Rounding
//
// Amounts are rounded half away from zero on their shortest decimal representation,
// so 1.005 becomes "1.01" and 2.5 with zero fractional digits becomes "3".
// Binary floating point artefacts do not leak into the output: 0.1+0.2 formats
// as "0.30".
//
// # Negative Amounts
//
// FormatCurrency never writes a minus sign. A negative amount only switches the
// placement flags from the Positive* to the Negative* fields:
//
//	c := money.Conventions{DecimalPoint: ".", FracDigits: 2, CurrencySymbol: "$",
//	    PositiveCSPrecedes: true, NegativeSepBySpace: true}
//	money.FormatCurrency(5, c)  // "$5.00"
//	money.FormatCurrency(-5, c) // "5.00 $"
//
// Callers that need an explicit sign should compose it themselves, or use
// FormatNumber and add the symbol.
//
// # Template Input
//
// Template variables arrive as strings, numbers or nil. ParseAmount accepts all
// Go numeric types, json.Number and numeric strings; nil and blank strings are
// zero, like an unset variable:
//
//	amount, err := money.ParseAmount(vars["price"])
//	if err != nil {
//	    return err
//	}
//	s, err := money.FormatCurrency(amount, c)
//
// # Error Handling
//
// The package defines sentinel errors for consistent error handling:
//
//   - [ErrInvalidConventions] - FracDigits out of range or missing decimal point
//   - [ErrInvalidAmount] - NaN, infinity, unsupported type or unparseable string
//
// Both are wrapped with detail; use errors.Is to match them.
package money
