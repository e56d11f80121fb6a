package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatAmount renders an integer amount with thousand separators, e.g. 1,680.
func FormatAmount(amount int64) string {
	return moneyPrinter.Sprintf("%d", amount)
}
