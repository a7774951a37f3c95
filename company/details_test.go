package company

import (
	"math/rand"
	"testing"

	"github.com/initializ/practicas/failure"
)

func validDetails() Details {
	return Details{
		LegalName:   "TechCorp S.A.",
		Address:     "Av. Corrientes 1234",
		PostalCode:  "1043",
		PhoneNumber: "11-1234-5678",
	}
}

func TestFilterPostalCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "1"},
		{"1043", "1043"},
		{"10435", "1043"},
		{"1a0b4c3", "1043"},
		{"abcd", ""},
		{" 12 ", "12"},
	}
	for _, tt := range tests {
		if got := FilterPostalCode(tt.input); got != tt.want {
			t.Errorf("FilterPostalCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFilterPostalCodeAnySequence(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alphabet := []rune("0123456789abcXYZ -_.ñ")
	value := ""
	for i := 0; i < 1000; i++ {
		value = FilterPostalCode(value + string(alphabet[r.Intn(len(alphabet))]))
		if len(value) > PostalCodeLength {
			t.Fatalf("value %q longer than %d", value, PostalCodeLength)
		}
		for _, c := range value {
			if c < '0' || c > '9' {
				t.Fatalf("value %q contains non-digit", value)
			}
		}
	}
}

func TestDetailsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Details)
		ok     bool
	}{
		{"valid", func(d *Details) {}, true},
		{"phone with spaces", func(d *Details) { d.PhoneNumber = "11 1234 5678" }, true},
		{"phone 15 digits", func(d *Details) { d.PhoneNumber = "123456789012345" }, true},
		{"missing name", func(d *Details) { d.LegalName = "  " }, false},
		{"missing address", func(d *Details) { d.Address = "" }, false},
		{"missing postal code", func(d *Details) { d.PostalCode = "" }, false},
		{"short postal code", func(d *Details) { d.PostalCode = "104" }, false},
		{"missing phone", func(d *Details) { d.PhoneNumber = "" }, false},
		{"short phone", func(d *Details) { d.PhoneNumber = "1234-567" }, false},
		{"long phone", func(d *Details) { d.PhoneNumber = "1234567890123456" }, false},
		{"phone letters", func(d *Details) { d.PhoneNumber = "11-ABCD-5678" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			err := d.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				if failure.KindOf(err) != failure.InvalidInput {
					t.Errorf("kind = %s, want INVALID_INPUT", failure.KindOf(err))
				}
			}
		})
	}
}

func TestDetailsValidateOrder(t *testing.T) {
	// Everything is wrong: the name is reported first.
	err := Details{PostalCode: "1"}.Validate()
	if err == nil || err.Error() != "INVALID_INPUT: company name is required" {
		t.Errorf("got %v", err)
	}
	d := validDetails()
	d.PostalCode = "12"
	d.PhoneNumber = ""
	if err := d.Validate(); err == nil || err.Error() != "INVALID_INPUT: postal code must have 4 digits" {
		t.Errorf("got %v", err)
	}
}
