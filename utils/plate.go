// utils/plate.go
package utils

import (
	"regexp"
	"strings"
)

// MinPlateLength is the shortest normalized plate worth querying for.
const MinPlateLength = 7

var legacyPlate = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)

// NormalizePlate uppercases a license plate and strips spaces and hyphens.
// Legacy plates (three letters, four digits) come back in the canonical
// LLL-NNNN form; Mercosul plates (ABC1D23) stay as a single block.
func NormalizePlate(plate string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(plate))
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if legacyPlate.MatchString(cleaned) {
		return cleaned[:3] + "-" + cleaned[3:]
	}
	return cleaned
}

// ValidatePlate reports whether a plate is long enough after normalization.
func ValidatePlate(plate string) bool {
	return len(NormalizePlate(plate)) >= MinPlateLength
}
