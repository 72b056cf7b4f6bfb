// Package server exposes extraction and the Drive source over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/source"
)

// DriveFactory creates the Drive source for one request. It returns
// source.ErrMissingAPIKey when no key is configured.
type DriveFactory func(ctx context.Context) (source.Source, error)

// Server serves the cellcurve HTTP API.
type Server struct {
	opts  cellcurve.Options
	drive DriveFactory
	log   logrus.FieldLogger
}

// New creates a server. A nil drive factory makes the Drive routes report
// a missing API key.
func New(opts cellcurve.Options, drive DriveFactory, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if drive == nil {
		drive = func(context.Context) (source.Source, error) { return nil, source.ErrMissingAPIKey }
	}
	return &Server{opts: opts, drive: drive, log: log}
}

// Handler builds the gin engine with all routes.
func (s *Server) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(s.log))

	api := router.Group("/api")
	api.GET("/health", s.health)
	api.POST("/process", s.process)
	api.POST("/drive/list", s.driveList)
	api.GET("/drive/download/:fileId", s.driveDownload)
	api.POST("/drive/process", s.driveProcess)

	return router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("HTTP API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return pkgerrors.Wrap(err, "failed to serve")
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return pkgerrors.Wrap(err, "failed to shut down")
	}
	return nil
}
