// Package server exposes the mocked company and contract services as a
// small JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/logging"
)

// Config configures the HTTP mock backend.
type Config struct {
	Port     int
	Registry company.Registry
	Emitter  contracts.Emitter
	Logger   logging.Logger
}

// batch is the last emission issued for a project.
type batch struct {
	project  *contracts.Project
	emission *contracts.Emission
}

// Server serves the mock backend over HTTP.
type Server struct {
	port     int
	registry company.Registry
	emitter  contracts.Emitter
	log      logging.Logger

	batchesMu sync.RWMutex
	batches   map[string]batch

	srv *http.Server
}

// NewServer creates a new mock backend server.
func NewServer(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop{}
	}
	return &Server{
		port:     cfg.Port,
		registry: cfg.Registry,
		emitter:  cfg.Emitter,
		log:      log,
		batches:  make(map[string]batch),
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(s.log))

	api := router.Group("/api")
	{
		api.GET("/ping", s.ping)

		api.POST("/companies/check", s.checkCompany)
		api.POST("/companies", s.registerCompany)

		api.GET("/projects/:number", s.getProject)
		api.POST("/projects/:number/contracts", s.emitContracts)
		api.GET("/projects/:number/contracts.xlsx", s.exportContracts)
	}
	return router
}

// Start begins serving HTTP. It blocks until the context is cancelled or
// an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	s.log.Info("mock backend listening", map[string]any{"addr": ln.Addr().String()})

	go func() {
		<-ctx.Done()
		s.srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}

func (s *Server) storeBatch(p *contracts.Project, e *contracts.Emission) {
	s.batchesMu.Lock()
	defer s.batchesMu.Unlock()
	s.batches[p.Number] = batch{project: p, emission: e}
}

func (s *Server) lastBatch(number string) (batch, bool) {
	s.batchesMu.RLock()
	defer s.batchesMu.RUnlock()
	b, ok := s.batches[number]
	return b, ok
}
