package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatMoney renders cents with the currency symbol and pt-BR separators,
// e.g. "R$ 1.234,56".
func FormatMoney(currency string, cents int64) string {
	if cents < 0 {
		return "-" + currency + " " + FormatAmount(-cents)
	}

	return currency + " " + FormatAmount(cents)
}

// FormatAmount renders cents with pt-BR separators and no symbol.
func FormatAmount(cents int64) string {
	if cents < 0 {
		return "-" + FormatAmount(-cents)
	}

	return printer.Sprintf("%.2f", Amount(cents).InexactFloat64())
}

// Amount converts cents to a decimal value.
func Amount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
