package filters

import (
	"github.com/dmitrymomot/liquidfilters/pkg/money"
)

// Money formats v with the currency symbol. v is anything money.ParseAmount accepts.
func Money(v any, c money.Conventions) (string, error) {
	return MoneyWithCurrency(v, c)
}

// MoneyWithCurrency formats v with the currency symbol.
func MoneyWithCurrency(v any, c money.Conventions) (string, error) {
	amount, err := money.ParseAmount(v)
	if err != nil {
		return "", err
	}
	return money.FormatCurrency(amount, c)
}

// MoneyWithoutCurrency formats v as a grouped number without symbol.
func MoneyWithoutCurrency(v any, c money.Conventions) (string, error) {
	amount, err := money.ParseAmount(v)
	if err != nil {
		return "", err
	}
	return money.FormatNumber(amount, c)
}

// MoneyWithoutTrailingZeros formats v with the currency symbol and drops an all-zero
// fraction.
func MoneyWithoutTrailingZeros(v any, c money.Conventions) (string, error) {
	amount, err := money.ParseAmount(v)
	if err != nil {
		return "", err
	}
	return money.FormatCurrencyNoTrailingZeros(amount, c)
}
