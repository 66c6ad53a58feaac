package estimate

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupee = "₹"

var indianEnglish = language.MustParse("en-IN")

// FormatCurrency renders amount as whole Indian Rupees with Indian digit
// grouping, e.g. 1000000 -> "₹10,00,000". Infinities print as "₹∞".
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return rupee + "NaN"
	case math.IsInf(amount, 1):
		return rupee + "∞"
	case math.IsInf(amount, -1):
		return "-" + rupee + "∞"
	}

	rounded := math.Round(amount)
	if rounded == 0 {
		// avoid "-₹0" for small negatives
		return rupee + "0"
	}

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	// message.Printer is not safe for concurrent use.
	p := message.NewPrinter(indianEnglish)
	return sign + rupee + p.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
}
