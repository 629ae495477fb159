// Package server exposes missions, history, exports and reports over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/pkg/logger"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/report"
)

// Deps are the services the API is built on.
type Deps struct {
	Profiles *profile.Store
	Missions *mission.Generator
	History  *history.Store
	Reports  *report.Generator
	Renderer *render.Renderer
	Log      *logger.Logger

	// Timeout bounds each generation call. Zero means no deadline.
	Timeout time.Duration
	// Now is the clock; nil means time.Now.
	Now func() time.Time
	// CORSOrigins enables CORS for these origins when non-empty.
	CORSOrigins []string
}

// NewRouter builds the gin engine with all routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handler{Deps: d, log: d.Log.With("component", "http")}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(h.log))
	if len(d.CORSOrigins) > 0 {
		router.Use(CORS(d.CORSOrigins))
	}

	router.GET("/healthz", h.health)

	api := router.Group("/api")
	{
		api.GET("/children", h.listChildren)
		api.POST("/children/:id/missions", h.generateMission)
		api.GET("/children/:id/missions", h.listMissions)
		api.GET("/children/:id/missions/:day", h.getMission)
		api.PUT("/children/:id/missions/:day", h.saveMission)
		api.GET("/children/:id/missions/:day/download", h.downloadMission)
		api.POST("/children/:id/report", h.buildReport)
		api.POST("/render/pdf", h.renderPDF)
		api.POST("/render/png", h.renderPNG)
	}

	return router
}

// Server wraps http.Server with graceful shutdown.
type Server struct {
	srv *http.Server
	log *logger.Logger
}

// New creates a Server listening on addr.
func New(addr string, d Deps) *Server {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(d),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: d.Log,
	}
}

// Run serves until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("http server shutting down")
	return s.srv.Shutdown(shutdownCtx)
}
