package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseCurrency converts a currency-prefixed price label like "₹159.9" to its
// numeric value. Menu prices are stored as display text with the symbol kept,
// so the cart total has to strip everything up to the first digit before
// parsing. Unparseable input counts as 0.
func ParseCurrency(price string) float64 {
	price = strings.TrimSpace(price)

	start := -1
	for i, r := range price {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(price[start:]), 64)
	if err != nil {
		return 0
	}
	return value
}
