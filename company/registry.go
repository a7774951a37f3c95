package company

import (
	"context"
	"time"

	"github.com/initializ/practicas/failure"
	"github.com/initializ/practicas/internal/latency"
)

// RegisteredCUIT is the CUIT the mock registry treats as already registered.
const RegisteredCUIT = "11111111111"

// Data is a fully registered company.
type Data struct {
	TaxID       string `json:"taxId"`
	LegalName   string `json:"legalName"`
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Registry is the company registry service the wizard talks to.
type Registry interface {
	// CheckTaxID verifies that taxID may be registered.
	CheckTaxID(ctx context.Context, taxID string) error
	// Register stores the company details for a checked taxID.
	Register(ctx context.Context, taxID string, details Details) (*Data, error)
}

// MockRegistry simulates the registry with fixed latencies and a single
// already-registered CUIT.
type MockRegistry struct {
	CheckLatency    time.Duration
	RegisterLatency time.Duration
}

// NewMockRegistry creates a MockRegistry with the given latencies.
func NewMockRegistry(checkLatency, registerLatency time.Duration) *MockRegistry {
	return &MockRegistry{
		CheckLatency:    checkLatency,
		RegisterLatency: registerLatency,
	}
}

// CheckTaxID fails with INVALID_INPUT for malformed CUITs and with
// ALREADY_REGISTERED for RegisteredCUIT.
func (m *MockRegistry) CheckTaxID(ctx context.Context, taxID string) error {
	if !ValidCUIT(taxID) {
		return failure.New(failure.InvalidInput)
	}
	if err := latency.Wait(ctx, m.CheckLatency); err != nil {
		return failure.Wrap(failure.Unexpected, err)
	}
	if StripCUIT(taxID) == RegisteredCUIT {
		return failure.New(failure.AlreadyRegistered)
	}
	return nil
}

// Register always succeeds once the input is valid, merging the stripped
// taxID with the details.
func (m *MockRegistry) Register(ctx context.Context, taxID string, details Details) (*Data, error) {
	if !ValidCUIT(taxID) {
		return nil, failure.New(failure.InvalidInput)
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if err := latency.Wait(ctx, m.RegisterLatency); err != nil {
		return nil, failure.Wrap(failure.Unexpected, err)
	}
	return &Data{
		TaxID:       StripCUIT(taxID),
		LegalName:   details.LegalName,
		Address:     details.Address,
		PostalCode:  details.PostalCode,
		PhoneNumber: details.PhoneNumber,
	}, nil
}
