package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders amount with the currency symbol placed according to c.
//
// The magnitude is rounded half away from zero to c.FracDigits digits. The sign of
// amount only selects which placement flags apply; no minus sign is written, so
// FormatCurrency(-5, c) and FormatCurrency(5, c) differ only in symbol placement.
func FormatCurrency(amount float64, c Conventions) (string, error) {
	d, err := parse(amount, c)
	if err != nil {
		return "", err
	}
	return withSymbol(d.format(c, true), amount < 0, c), nil
}

// FormatCurrencyNoTrailingZeros is FormatCurrency that omits a fraction made only of
// zeros: "$10" instead of "$10.00", but "$10.50" stays as is.
func FormatCurrencyNoTrailingZeros(amount float64, c Conventions) (string, error) {
	d, err := parse(amount, c)
	if err != nil {
		return "", err
	}
	return withSymbol(d.format(c, !d.wholeNumber()), amount < 0, c), nil
}

// FormatNumber renders amount without a currency symbol. Unlike FormatCurrency it
// keeps a leading "-" for negative amounts that do not round to zero.
func FormatNumber(amount float64, c Conventions) (string, error) {
	d, err := parse(amount, c)
	if err != nil {
		return "", err
	}
	s := d.format(c, true)
	if amount < 0 && !d.zero() {
		s = "-" + s
	}
	return s, nil
}

// ParseAmount converts a filter input into a float64.
// Empty strings and nil are treated as zero, like an unset template variable.
func ParseAmount(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		return parseString(x.String())
	case string:
		return parseString(x)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}
}

func parseString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return f, nil
}

// decimal is a rounded, unsigned amount split into digit strings.
type decimal struct {
	integer  string
	fraction string
}

func parse(amount float64, c Conventions) (decimal, error) {
	if err := c.Validate(); err != nil {
		return decimal{}, err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal{}, fmt.Errorf("%w: %v is not finite", ErrInvalidAmount, amount)
	}
	return round(math.Abs(amount), c.FracDigits), nil
}

// round works on the shortest decimal representation of f, which is what a reader
// sees in the source: 1.005 rounds to 1.01 even though its binary value is below it.
func round(f float64, frac int) decimal {
	integer, fraction, _ := strings.Cut(strconv.FormatFloat(f, 'f', -1, 64), ".")

	up := len(fraction) > frac && fraction[frac] >= '5'
	if len(fraction) > frac {
		fraction = fraction[:frac]
	} else {
		fraction += strings.Repeat("0", frac-len(fraction))
	}
	if !up {
		return decimal{integer: integer, fraction: fraction}
	}

	digits := []byte(integer + fraction)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] == '9' {
			digits[i] = '0'
			continue
		}
		digits[i]++
		break
	}
	if i < 0 {
		digits = append([]byte{'1'}, digits...)
	}

	split := len(digits) - frac
	return decimal{integer: string(digits[:split]), fraction: string(digits[split:])}
}

func (d decimal) zero() bool {
	return strings.Trim(d.integer+d.fraction, "0") == ""
}

func (d decimal) wholeNumber() bool {
	return strings.Trim(d.fraction, "0") == ""
}

func (d decimal) format(c Conventions, withFraction bool) string {
	s := group(d.integer, c.ThousandsSep)
	if withFraction && d.fraction != "" {
		s += c.DecimalPoint + d.fraction
	}
	return s
}

// group inserts sep between every three integer digits, counting from the right.
func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3*len(sep))
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func withSymbol(num string, negative bool, c Conventions) string {
	if c.CurrencySymbol == "" {
		return num
	}

	precedes, space := c.signed(negative)
	sep := ""
	if space {
		sep = " "
	}
	if precedes {
		return c.CurrencySymbol + sep + num
	}
	return num + sep + c.CurrencySymbol
}
