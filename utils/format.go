// utils/format.go
package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a value in Brazilian currency notation,
// e.g. 1234.5 -> "R$ 1.234,50".
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	whole := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(whole, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), decPart)
}

// FormatPhone renders a bare national number as (DD) NNNN-NNNN or
// (DD) NNNNN-NNNN. Anything else is returned unchanged.
func FormatPhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	switch len(cleaned) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", cleaned[:2], cleaned[2:6], cleaned[6:])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", cleaned[:2], cleaned[2:7], cleaned[7:])
	default:
		return phone
	}
}
