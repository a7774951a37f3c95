package company

import (
	"errors"
	"regexp"
	"strings"

	"github.com/initializ/practicas/failure"
)

// PostalCodeLength is the exact number of digits of a postal code.
const PostalCodeLength = 4

var (
	postalCodeRe = regexp.MustCompile(`^\d{4}$`)
	phoneRe      = regexp.MustCompile(`^\d{8,15}$`)
)

// Details holds the additional data collected after the CUIT check.
type Details struct {
	LegalName   string `json:"legalName"`
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// FilterPostalCode keeps only digits and caps the result at four of them.
func FilterPostalCode(v string) string {
	digits := strings.Map(keepDigits, v)
	if len(digits) > PostalCodeLength {
		digits = digits[:PostalCodeLength]
	}
	return digits
}

// StripPhone removes hyphens and whitespace from a phone number.
func StripPhone(v string) string {
	return separatorsRe.ReplaceAllString(v, "")
}

// Validate checks the fields in form order and reports the first problem
// as an INVALID_INPUT failure.
func (d Details) Validate() error {
	switch {
	case strings.TrimSpace(d.LegalName) == "":
		return invalid("company name is required")
	case strings.TrimSpace(d.Address) == "":
		return invalid("address is required")
	case strings.TrimSpace(d.PostalCode) == "":
		return invalid("postal code is required")
	case !postalCodeRe.MatchString(d.PostalCode):
		return invalid("postal code must have 4 digits")
	case strings.TrimSpace(d.PhoneNumber) == "":
		return invalid("phone number is required")
	case !phoneRe.MatchString(StripPhone(d.PhoneNumber)):
		return invalid("phone number must have between 8 and 15 digits")
	}
	return nil
}

func invalid(reason string) error {
	return failure.Wrap(failure.InvalidInput, errors.New(reason))
}
