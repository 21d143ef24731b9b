// Package currency renders prices the way the shop quotes them: Indian
// rupees with en-IN digit grouping and no paise.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders amount as a rupee price string, e.g. ₹4,250.
func Format(amount float64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
