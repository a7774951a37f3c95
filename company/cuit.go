// Package company models the company registration workflow: CUIT handling,
// additional company details and the mocked company registry.
package company

import (
	"regexp"
	"strings"
)

// CUITLength is the number of digits of a canonical CUIT.
const CUITLength = 11

// CUITInputMaxLen is the longest value the CUIT field accepts (NN-NNNNNNNN-N).
const CUITInputMaxLen = 13

var (
	cuitRe       = regexp.MustCompile(`^\d{11}$`)
	digitsOnlyRe = regexp.MustCompile(`^\d*$`)
	separatorsRe = regexp.MustCompile(`[-\s]`)
)

// keepDigits is a strings.Map func dropping everything but ASCII digits.
func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// StripCUIT removes hyphens and whitespace from a CUIT as typed.
func StripCUIT(s string) string {
	return separatorsRe.ReplaceAllString(s, "")
}

// ValidCUIT reports whether s reduces to exactly 11 digits once separators
// are removed.
func ValidCUIT(s string) bool {
	return cuitRe.MatchString(StripCUIT(s))
}

// FormatCUITInput reformats the CUIT field as the user types. Values made
// only of digits and hyphens are regrouped as NN-NNNNNNNN-N (capped at 11
// digits); anything else is returned untouched so invalid input can still
// be submitted.
func FormatCUITInput(value string) string {
	if !digitsOnlyRe.MatchString(strings.ReplaceAll(value, "-", "")) {
		return value
	}

	digits := strings.Map(keepDigits, value)
	if len(digits) > CUITLength {
		digits = digits[:CUITLength]
	}

	switch {
	case len(digits) >= 3 && len(digits) <= 10:
		return digits[:2] + "-" + digits[2:]
	case len(digits) == CUITLength:
		return DisplayCUIT(digits)
	}
	return digits
}

// DisplayCUIT renders an 11-digit CUIT as NN-NNNNNNNN-N. Other values are
// returned as-is.
func DisplayCUIT(cuit string) string {
	if !cuitRe.MatchString(cuit) {
		return cuit
	}
	return cuit[:2] + "-" + cuit[2:10] + "-" + cuit[10:]
}
