package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/failure"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var statusByKind = map[failure.Kind]int{
	failure.InvalidInput:            http.StatusBadRequest,
	failure.AlreadyRegistered:       http.StatusConflict,
	failure.NotFound:                http.StatusNotFound,
	failure.WrongState:              http.StatusConflict,
	failure.ProcessNotFinal:         http.StatusConflict,
	failure.NoConfirmedApplications: http.StatusConflict,
	failure.Unexpected:              http.StatusInternalServerError,
}

// fail writes the failure body for err and records err on the context.
func fail(c *gin.Context, err error) {
	kind := failure.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.Error(err) //nolint:errcheck
	c.JSON(status, gin.H{
		"ok":      false,
		"reason":  kind,
		"message": failure.Message(kind),
	})
}

type checkRequest struct {
	TaxID string `json:"taxId"`
}

type registerRequest struct {
	TaxID string `json:"taxId"`
	company.Details
}

// ping handles GET /api/ping
func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "pong"})
}

// checkCompany handles POST /api/companies/check
func (s *Server) checkCompany(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, failure.Wrap(failure.InvalidInput, err))
		return
	}
	if err := s.registry.CheckTaxID(c.Request.Context(), req.TaxID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "taxId": company.StripCUIT(req.TaxID)})
}

// registerCompany handles POST /api/companies
func (s *Server) registerCompany(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, failure.Wrap(failure.InvalidInput, err))
		return
	}
	data, err := s.registry.Register(c.Request.Context(), req.TaxID, req.Details)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "company": data})
}

// getProject handles GET /api/projects/:number
func (s *Server) getProject(c *gin.Context) {
	p, err := s.emitter.LookupProject(c.Request.Context(), c.Param("number"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// emitContracts handles POST /api/projects/:number/contracts
func (s *Server) emitContracts(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := s.emitter.LookupProject(ctx, c.Param("number"))
	if err != nil {
		fail(c, err)
		return
	}
	e, err := s.emitter.EmitContracts(ctx, p)
	if err != nil {
		fail(c, err)
		return
	}
	s.storeBatch(p, e)
	s.log.Info("contracts emitted", map[string]any{
		"project":    p.Number,
		"batch_id":   e.BatchID,
		"contracts":  len(e.ContractIDs),
		"request_id": c.GetString(requestIDKey),
	})
	c.JSON(http.StatusCreated, gin.H{
		"ok":          true,
		"contractIds": e.ContractIDs,
		"batchId":     e.BatchID,
		"issuedAt":    e.IssuedAt,
	})
}

// exportContracts handles GET /api/projects/:number/contracts.xlsx and
// returns the last batch emitted for the project.
func (s *Server) exportContracts(c *gin.Context) {
	number := c.Param("number")
	b, ok := s.lastBatch(number)
	if !ok {
		fail(c, failure.Wrap(failure.NotFound, fmt.Errorf("no contracts emitted for project %s", number)))
		return
	}

	var buf bytes.Buffer
	if err := contracts.WriteXLSX(&buf, b.project, b.emission); err != nil {
		fail(c, failure.Wrap(failure.Unexpected, err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="contratos-%s.xlsx"`, number))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
