package contracts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/initializ/practicas/failure"
	"github.com/initializ/practicas/internal/latency"
)

// Emitter is the project and contract service behind the emission wizard.
type Emitter interface {
	// LookupProject fetches a project that is ready for contract emission.
	LookupProject(ctx context.Context, number string) (*Project, error)
	// EmitContracts issues one contract per confirmed student of p.
	EmitContracts(ctx context.Context, p *Project) (*Emission, error)
}

// MockEmitter simulates the contract service. Sentinel project numbers map
// to fixed failures; any other number returns the template project.
type MockEmitter struct {
	LookupLatency   time.Duration
	EmissionLatency time.Duration

	// Clock stamps emissions; nil means time.Now.
	Clock func() time.Time
}

// NewMockEmitter creates a MockEmitter with the given latencies.
func NewMockEmitter(lookupLatency, emissionLatency time.Duration) *MockEmitter {
	return &MockEmitter{
		LookupLatency:   lookupLatency,
		EmissionLatency: emissionLatency,
	}
}

var sentinelFailures = map[string]failure.Kind{
	ProjectNotFound:        failure.NotFound,
	ProjectWrongState:      failure.WrongState,
	ProjectProcessNotFinal: failure.ProcessNotFinal,
	ProjectNoConfirmedApps: failure.NoConfirmedApplications,
}

// SentinelFailure reports the failure kind a sentinel project number maps to.
func SentinelFailure(number string) (failure.Kind, bool) {
	k, ok := sentinelFailures[number]
	return k, ok
}

// LookupProject validates number, waits the lookup latency and dispatches
// on the sentinel table.
func (m *MockEmitter) LookupProject(ctx context.Context, number string) (*Project, error) {
	if !ValidProjectNumber(number) {
		return nil, failure.New(failure.InvalidInput)
	}
	if err := latency.Wait(ctx, m.LookupLatency); err != nil {
		return nil, failure.Wrap(failure.Unexpected, err)
	}
	if k, ok := SentinelFailure(number); ok {
		return nil, failure.New(k)
	}
	return templateProject(number), nil
}

// EmitContracts waits the emission latency and numbers one contract per
// confirmed student. It never fails for a valid project.
func (m *MockEmitter) EmitContracts(ctx context.Context, p *Project) (*Emission, error) {
	if p == nil || !ValidProjectNumber(p.Number) {
		return nil, failure.New(failure.InvalidInput)
	}
	if err := latency.Wait(ctx, m.EmissionLatency); err != nil {
		return nil, failure.Wrap(failure.Unexpected, err)
	}
	return &Emission{
		BatchID:       uuid.NewString(),
		ProjectNumber: p.Number,
		ContractIDs:   ContractIDs(p),
		IssuedAt:      m.now(),
	}, nil
}

func (m *MockEmitter) now() time.Time {
	if m.Clock != nil {
		return m.Clock()
	}
	return time.Now()
}
