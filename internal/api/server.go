// Package api serves the authoring-side conversion API: encode editing
// documents to VSN, decode VSN back, validate VSN and export its schema.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/reoring/govsn/internal/config"
	xlog "github.com/reoring/govsn/internal/log"
	"github.com/reoring/govsn/internal/metrics"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = echo.HeaderXRequestID

// Server wires handlers, middleware and metrics onto one echo instance.
type Server struct {
	cfg     config.Config
	echo    *echo.Echo
	log     zerolog.Logger
	metrics *metrics.Metrics
	version string
}

// New builds a Server. A fresh Prometheus registry is used per server so
// tests can run several side by side.
func New(cfg config.Config, version string) *Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		cfg:     cfg,
		echo:    echo.New(),
		log:     xlog.WithComponent("api"),
		metrics: metrics.New(reg),
		version: version,
	}
	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = ErrorHandler()

	e.Use(middleware.Recover())
	e.Use(s.requestContext)
	if cfg.Server.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	}

	e.GET("/health", s.handleHealth)
	if cfg.Server.Metrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
	g := e.Group("/api/v1/vsn")
	g.POST("/encode", s.handleEncode)
	g.POST("/decode", s.handleDecode)
	g.POST("/validate", s.handleValidate)
	g.GET("/schema", s.handleSchema)
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.echo }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.echo,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestContext assigns a request ID and attaches a request-scoped logger.
func (s *Server) requestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		rid := req.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Response().Header().Set(RequestIDHeader, rid)
		ctx := xlog.ContextWithRequestID(req.Context(), rid)
		l := xlog.WithContext(ctx, s.log)
		ctx = l.WithContext(ctx)
		c.SetRequest(req.WithContext(ctx))

		start := time.Now()
		err := next(c)
		l.Debug().
			Str("method", req.Method).
			Str("route", c.Path()).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
		return err
	}
}
