package core

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount formats amount in the given ISO 4217 currency, eg. "$ 2,500.00".
// Unknown currency codes fall back to a plain grouped number.
func FormatAmount(code string, amount float64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f", amount)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}
