// Package ssn handles the resident registration number field on the
// employee form: the back half is masked before storage and the gender
// digit fills in the gender field when the operator left it empty.
package ssn

import (
	"strings"

	"github.com/spec-kit/backoffice/internal/domain"
)

const (
	// MaskChar replaces hidden digits.
	MaskChar = '*'
	// genderIndex is the position of the gender digit (first digit after "YYMMDD-").
	genderIndex = 7
	maskedTail  = "*******"
)

// Mask hides everything after the gender digit. Input of up to seven
// characters, or whose tail already carries a mask character, is returned
// unchanged.
func Mask(value string) string {
	runes := []rune(value)
	if len(runes) <= genderIndex {
		return value
	}
	if strings.ContainsRune(string(runes[genderIndex:]), MaskChar) {
		return value
	}
	return string(runes[:genderIndex+1]) + maskedTail
}

// DeriveGender reads the gender digit: odd is male, even is female. ok is
// false when the value is too short or the character is not a digit.
func DeriveGender(value string) (gender domain.Gender, ok bool) {
	runes := []rune(value)
	if len(runes) <= genderIndex {
		return domain.GenderUnset, false
	}
	r := runes[genderIndex]
	if r < '0' || r > '9' {
		return domain.GenderUnset, false
	}
	if (r-'0')%2 == 1 {
		return domain.GenderMale, true
	}
	return domain.GenderFemale, true
}

// Apply masks value and, when chosen is unset, derives the gender from it.
// A gender chosen on the form is never overwritten.
func Apply(value string, chosen domain.Gender) (string, domain.Gender) {
	masked := Mask(value)
	if chosen != domain.GenderUnset {
		return masked, chosen
	}
	if derived, ok := DeriveGender(masked); ok {
		return masked, derived
	}
	return masked, chosen
}
