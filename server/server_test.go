package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/failure"
	"github.com/initializ/practicas/logging"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer() *Server {
	return NewServer(Config{
		Registry: company.NewMockRegistry(0, 0),
		Emitter:  contracts.NewMockEmitter(0, 0),
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, kind failure.Kind) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, string(kind), body["reason"])
	assert.Equal(t, failure.Message(kind), body["message"])
}

func TestPing(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", decode(t, rec)["message"])
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer().Handler()

	rec := do(t, h, http.MethodGet, "/api/ping", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err, "generated request ID must be a UUID")

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(requestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	req.Header.Set(requestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(requestIDHeader))
}

func TestCheckCompany(t *testing.T) {
	h := newTestServer().Handler()

	rec := do(t, h, http.MethodPost, "/api/companies/check", `{"taxId":"20-12345678-9"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "20123456789", decode(t, rec)["taxId"])

	rec = do(t, h, http.MethodPost, "/api/companies/check", `{"taxId":"11-11111111-1"}`)
	assertFailure(t, rec, http.StatusConflict, failure.AlreadyRegistered)

	rec = do(t, h, http.MethodPost, "/api/companies/check", `{"taxId":"123"}`)
	assertFailure(t, rec, http.StatusBadRequest, failure.InvalidInput)

	rec = do(t, h, http.MethodPost, "/api/companies/check", `{`)
	assertFailure(t, rec, http.StatusBadRequest, failure.InvalidInput)
}

func TestRegisterCompany(t *testing.T) {
	h := newTestServer().Handler()

	rec := do(t, h, http.MethodPost, "/api/companies", `{
		"taxId": "20123456789",
		"legalName": "TechCorp S.A.",
		"address": "Av. Corrientes 1234",
		"postalCode": "1043",
		"phoneNumber": "11-1234-5678"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		OK      bool         `json:"ok"`
		Company company.Data `json:"company"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, company.Data{
		TaxID:       "20123456789",
		LegalName:   "TechCorp S.A.",
		Address:     "Av. Corrientes 1234",
		PostalCode:  "1043",
		PhoneNumber: "11-1234-5678",
	}, body.Company)

	rec = do(t, h, http.MethodPost, "/api/companies", `{"taxId":"20123456789","legalName":"Acme"}`)
	assertFailure(t, rec, http.StatusBadRequest, failure.InvalidInput)
}

func TestGetProject(t *testing.T) {
	h := newTestServer().Handler()

	rec := do(t, h, http.MethodGet, "/api/projects/12345", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Project contracts.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "12345", body.Project.Number)
	assert.Len(t, body.Project.Students, 3)

	tests := []struct {
		number string
		status int
		kind   failure.Kind
	}{
		{"999", http.StatusNotFound, failure.NotFound},
		{"555", http.StatusConflict, failure.WrongState},
		{"777", http.StatusConflict, failure.ProcessNotFinal},
		{"444", http.StatusConflict, failure.NoConfirmedApplications},
		{"12a", http.StatusBadRequest, failure.InvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assertFailure(t, do(t, h, http.MethodGet, "/api/projects/"+tt.number, ""), tt.status, tt.kind)
		})
	}
}

func TestEmitAndExportContracts(t *testing.T) {
	h := newTestServer().Handler()

	rec := do(t, h, http.MethodGet, "/api/projects/12345/contracts.xlsx", "")
	assertFailure(t, rec, http.StatusNotFound, failure.NotFound)

	rec = do(t, h, http.MethodPost, "/api/projects/12345/contracts", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		OK          bool     `json:"ok"`
		ContractIDs []string `json:"contractIds"`
		BatchID     string   `json:"batchId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"CONT-12345-001", "CONT-12345-002", "CONT-12345-003"}, body.ContractIDs)
	_, err := uuid.Parse(body.BatchID)
	assert.NoError(t, err)

	rec = do(t, h, http.MethodGet, "/api/projects/12345/contracts.xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "contratos-12345.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Contratos")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "CONT-12345-003", rows[3][0])
}

func TestEmitContractsSentinel(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodPost, "/api/projects/555/contracts", "")
	assertFailure(t, rec, http.StatusConflict, failure.WrongState)
}

type brokenEmitter struct{}

func (brokenEmitter) LookupProject(context.Context, string) (*contracts.Project, error) {
	return nil, errors.New("database unavailable")
}
func (brokenEmitter) EmitContracts(context.Context, *contracts.Project) (*contracts.Emission, error) {
	return nil, errors.New("database unavailable")
}

type lineLogger struct {
	logging.Nop
	errors []map[string]any
}

func (l *lineLogger) Error(_ string, fields map[string]any) { l.errors = append(l.errors, fields) }

func TestUnexpectedErrorIsLogged(t *testing.T) {
	log := &lineLogger{}
	s := NewServer(Config{
		Registry: company.NewMockRegistry(0, 0),
		Emitter:  brokenEmitter{},
		Logger:   log,
	})

	rec := do(t, s.Handler(), http.MethodGet, "/api/projects/12345", "")
	assertFailure(t, rec, http.StatusInternalServerError, failure.Unexpected)

	require.Len(t, log.errors, 1)
	assert.Equal(t, http.StatusInternalServerError, log.errors[0]["status"])
	assert.Contains(t, log.errors[0]["errors"], "database unavailable")
}

func TestStartStopsOnCancel(t *testing.T) {
	s := NewServer(Config{
		Port:     0,
		Registry: company.NewMockRegistry(0, 0),
		Emitter:  contracts.NewMockEmitter(0, 0),
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
