package liquidfilters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidfilters"
	"github.com/dmitrymomot/liquidfilters/pkg/money"
)

func TestHandle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "deja-vu", liquidfilters.Handle("Déjà Vu!"))
	assert.Equal(t, "multiple-underscores", liquidfilters.Handle("___multiple___underscores___"))
	assert.Empty(t, liquidfilters.Handle(""))
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	got, err := liquidfilters.FormatCurrency(1234.5, money.DefaultConventions())
	require.NoError(t, err)
	assert.Equal(t, "$1,234.50", got)

	after := liquidfilters.Conventions{
		DecimalPoint:       ".",
		ThousandsSep:       ",",
		CurrencySymbol:     "$",
		FracDigits:         2,
		NegativeSepBySpace: true,
	}
	got, err = liquidfilters.FormatCurrency(-5, after)
	require.NoError(t, err)
	assert.Equal(t, "5.00 $", got)
}
