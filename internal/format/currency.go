// Package format renders game values for log lines and UI display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats a whole-dollar amount with a thousands separator,
// e.g. 12500 -> "$12,500". Negative amounts render as "-$500".
func Currency(amount int) string {
	if amount < 0 {
		return printer.Sprintf("-$%d", -amount)
	}
	return printer.Sprintf("$%d", amount)
}
