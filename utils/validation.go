// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneDigits = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// ValidatePhone checks if a phone number is plausible after stripping the
// usual punctuation. Accepts national (11999999999) and E.164 (+5511...)
// forms.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneDigits.MatchString(cleaned)
}
