// Package v1 implements the REST API of the platform. Every feature
// area registers its routes on the /api/v1 group; AI-backed routes go
// through the moderation gate and the generation proxy.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahilou/caverne/internal/profile"
	"github.com/nahilou/caverne/server/ai"
	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

// APIV1Service holds the shared dependencies of the v1 handlers.
type APIV1Service struct {
	Profile   *profile.Profile
	Store     *store.Store
	Generator *ai.Generator
	Moderator *ai.Moderator
}

// NewAPIV1Service creates the v1 API service. Without an AI key the
// completer stays nil and every generation resolves to its fallback.
func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	var completer ai.ChatCompleter
	if profile.IsAIEnabled() {
		completer = ai.NewProvider(&ai.Config{
			BaseURL: profile.AIBaseURL,
			APIKey:  profile.AIAPIKey,
			Model:   profile.AIModel,
			Timeout: profile.AITimeout,
		})
	}

	return &APIV1Service{
		Profile:   profile,
		Store:     store,
		Generator: ai.NewGenerator(completer, profile.MaxTokens),
		Moderator: ai.NewModerator(completer),
	}
}

// RegisterRoutes registers all v1 routes on the echo server.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	apiV1 := echoServer.Group("/api/v1")

	s.registerChatbotRoutes(apiV1)
	s.registerStoryRoutes(apiV1)
	s.registerQuizRoutes(apiV1)
	s.registerGameRoutes(apiV1)
	s.registerCreativeRoutes(apiV1)
	s.registerParentalRoutes(apiV1)
	s.registerComplianceRoutes(apiV1)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError maps a coded error to its HTTP status and JSON body.
// Upstream failures and unknown errors never leak details to the
// client; they are logged and rendered as a generic server error.
func writeError(c echo.Context, err error) error {
	apiErr, ok := err.(*apierr.APIError)
	if !ok {
		slog.Error("unexpected handler failure", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Erreur serveur",
			Message: "Une erreur est survenue.",
		})
	}

	switch apiErr.Code {
	case apierr.ErrCodeInvalidArgument:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: apiErr.Message, Message: apiErr.Guidance})
	case apierr.ErrCodeContentRejected:
		return c.JSON(http.StatusForbidden, errorResponse{Error: apiErr.Message, Message: apiErr.Guidance})
	case apierr.ErrCodeNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{Error: apiErr.Message})
	default:
		slog.Error("handler failure", "code", apiErr.Code, "error", apiErr)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Erreur serveur",
			Message: "Une erreur est survenue.",
		})
	}
}

// invalidArgument builds a 400 with a developer error label and a
// user-facing explanation, mirroring the {error, message} body shape.
func invalidArgument(label, message string) *apierr.APIError {
	e := apierr.InvalidArgument(label)
	e.Guidance = message
	return e
}
