package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount in cents as a US-style currency string,
// e.g. 597 -> "$5.97" and 123456789 -> "$1,234,567.89". Integer all the way
// down; no float rounding. The printer supplies the thousands grouping.
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + printer.Sprintf("%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}

// FormatDate renders a nanosecond epoch timestamp the way the order views
// display it, e.g. "Jan 2, 2006, 3:04 PM".
func FormatDate(nanoseconds int64) string {
	return time.Unix(0, nanoseconds).Format("Jan 2, 2006, 3:04 PM")
}
