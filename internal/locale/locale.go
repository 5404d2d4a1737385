// Package locale holds the static presentation tables: currency symbols,
// dashboard translations and money formatting. The metrics engine never
// imports it.
package locale

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"KES": "KSh",
	"NGN": "₦",
	"GHS": "₵",
	"ZAR": "R",
	"EGP": "£E",
	"MAD": "DH",
	"TZS": "TSh",
	"UGX": "USh",
	"ETB": "Br",
	"XOF": "CFA",
	"BRL": "R$",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"AED": "د.إ",
	"SAR": "﷼",
	"CHF": "CHF",
	"CAD": "C$",
	"AUD": "A$",
}

// Symbol returns the display symbol for code, falling back to "$".
func Symbol(code string) string {
	if s, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return s
	}
	return currencySymbols[DefaultCurrency]
}

// KnownCurrency reports whether code has a symbol entry.
func KnownCurrency(code string) bool {
	_, ok := currencySymbols[strings.ToUpper(code)]
	return ok
}

// FormatMoney renders amount with the currency symbol and grouped thousands,
// e.g. "KSh1,250.00".
func FormatMoney(code string, amount decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	f, _ := amount.Round(2).Float64()
	return Symbol(code) + p.Sprintf("%.2f", f)
}
