// Package money форматирует суммы в рупиях для сообщений пользователю.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Format возвращает сумму в виде "Rp 24.000"
func Format(amount int64) string {
	if amount < 0 {
		return "-" + printer.Sprintf("Rp %d", -amount)
	}
	return printer.Sprintf("Rp %d", amount)
}
