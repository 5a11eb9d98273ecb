package liquidfilters

import (
	"github.com/dmitrymomot/liquidfilters/pkg/money"
	"github.com/dmitrymomot/liquidfilters/pkg/slug"
)

// Conventions describes how a locale writes monetary amounts.
type Conventions = money.Conventions

// Handle turns text into a lowercase, dash-separated ASCII handle.
func Handle(s string) string {
	return slug.Handle(s)
}

// FormatCurrency formats amount with the currency symbol placed per c.
func FormatCurrency(amount float64, c Conventions) (string, error) {
	return money.FormatCurrency(amount, c)
}
