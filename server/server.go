// Package server wires the echo HTTP server of the platform.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/nahilou/caverne/internal/profile"
	"github.com/nahilou/caverne/server/internal/observability"
	apiv1 "github.com/nahilou/caverne/server/router/api/v1"
	"github.com/nahilou/caverne/store"
)

// Server is the main HTTP server.
type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
}

// NewServer creates the server and registers all routes.
func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(observability.RequestLogger())

	s := &Server{
		Profile:    profile,
		Store:      store,
		echoServer: e,
	}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Bienvenue sur l'API de La caverne de Nahilou",
			"version": profile.Version,
			"status":  "online",
		})
	})

	apiV1Service := apiv1.NewAPIV1Service(profile, store)
	apiV1Service.RegisterRoutes(e)

	return s, nil
}

// Start runs the server until it is shut down.
func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server started",
		"address", address,
		"mode", s.Profile.Mode,
		"ai_enabled", s.Profile.IsAIEnabled(),
	)

	if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "failed to start echo server")
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}
	slog.Info("server shutdown complete")
}
