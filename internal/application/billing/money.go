package billing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formatea centavos como moneda en-US ("$1,234.50").
func FormatCurrency(cents int64) string {
	return usdPrinter.Sprintf("$%.2f", float64(cents)/100)
}
