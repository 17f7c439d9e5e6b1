package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern pins amounts to plain decimal notation. ParseFloat also
// accepts exponent and hex-float forms, which would smuggle sub-cent
// precision past the decimal-places check.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ParseAmount parses a monetary amount submitted as a decimal string.
// Amounts must be non-negative plain decimals with at most two decimal
// places. Every route that accepts money goes through this one parser.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return 0, ErrInvalidAmount
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return value, nil
}

// FormatAmount renders an amount the way the API serves it back
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
