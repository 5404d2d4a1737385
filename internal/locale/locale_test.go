package locale_test

import (
	"testing"

	"bilantra/internal/locale"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	assert.Equal(t, "KSh", locale.Symbol("KES"))
	assert.Equal(t, "₦", locale.Symbol("ngn"))
	assert.Equal(t, "$", locale.Symbol("XYZ"), "unknown codes fall back to the dollar sign")
	assert.True(t, locale.KnownCurrency("zar"))
	assert.False(t, locale.KnownCurrency("XYZ"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "KSh1,250.50", locale.FormatMoney("KES", decimal.RequireFromString("1250.5")))
	assert.Equal(t, "$0.00", locale.FormatMoney("USD", decimal.Zero))
}

func TestTranslations(t *testing.T) {
	assert.Equal(t, "Dashibodi", locale.T(locale.Swahili, "dashboard"))
	assert.Equal(t, "Revenue", locale.T(locale.Lang("de"), "revenue"), "unsupported language falls back to English")
	assert.Equal(t, "nonexistent", locale.T(locale.English, "nonexistent"))

	for _, lang := range locale.Languages {
		labels := locale.Labels(lang)
		assert.Len(t, labels, len(locale.Labels(locale.English)), "language %s", lang)
	}
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Good morning", locale.Greeting(locale.English, 8))
	assert.Equal(t, "Buenas tardes", locale.Greeting(locale.Spanish, 14))
	assert.Equal(t, "Bonsoir", locale.Greeting(locale.French, 21))
}

func TestMatch(t *testing.T) {
	assert.Equal(t, locale.French, locale.Match("fr-CA,fr;q=0.9,en;q=0.5"))
	assert.Equal(t, locale.Portuguese, locale.Match("pt-BR"))
	assert.Equal(t, locale.English, locale.Match(""))
}
