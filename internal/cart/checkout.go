package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount rounded to cents without trailing zeros,
// e.g. 4.50 -> "4.5", 12.00 -> "12".
func FormatPrice(amount decimal.Decimal) string {
	return amount.Round(2).String()
}

// Message renders the order text sent to the café chat.
func Message(items []Item, currency string) string {
	var b strings.Builder
	b.WriteString("Hello! I'd like to place an order:\n\n")
	for _, item := range items {
		name := item.Name
		if item.SelectedOption != "" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.SelectedOption)
		}
		fmt.Fprintf(&b, "- %dx %s: %s %s\n", item.Quantity, name, currency, FormatPrice(item.Subtotal()))
	}
	fmt.Fprintf(&b, "\nTotal: %s %s", currency, FormatPrice(Total(items)))
	return b.String()
}

// Link builds the WhatsApp deep link for phone with message prefilled.
func Link(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}
