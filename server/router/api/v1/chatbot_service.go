package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahilou/caverne/server/ai"
	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

func (s *APIV1Service) registerChatbotRoutes(g *echo.Group) {
	g.POST("/chatbot/message", s.sendChatMessage)
	g.GET("/chatbot/history/:userId", s.getChatHistory)
	g.DELETE("/chatbot/history/:userId", s.clearChatHistory)
}

type sendMessageRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// sendChatMessage runs one conversation exchange. A rejected message
// leaves the stored history untouched; an accepted one appends the user
// turn, trims the history to its bound and appends the assistant reply.
func (s *APIV1Service) sendChatMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.Message == "" {
		return writeError(c, apierr.InvalidArgument("Le message est requis"))
	}
	if req.UserID == "" {
		return writeError(c, apierr.InvalidArgument("L'identifiant utilisateur est requis"))
	}

	ctx := c.Request().Context()

	if !s.Moderator.IsAppropriate(ctx, req.Message) {
		return writeError(c, apierr.ContentRejected(
			"Message inapproprié",
			"Ce message n'est pas adapté pour les enfants. Essaie de poser une autre question !",
		))
	}

	conversations := s.Store.Conversations
	if conversations.Len(req.UserID) == 0 {
		conversations.Append(req.UserID, store.Turn{Role: store.RoleSystem, Content: ai.ChatSystemPrompt})
	}
	conversations.Append(req.UserID, store.Turn{Role: store.RoleUser, Content: req.Message})
	conversations.Trim(req.UserID, s.Profile.MaxHistoryExchanges)

	reply, err := s.Generator.ChatReply(ctx, conversations.History(req.UserID))
	if err != nil {
		return writeError(c, err)
	}
	conversations.Append(req.UserID, store.Turn{Role: store.RoleAssistant, Content: reply})

	return c.JSON(http.StatusOK, map[string]string{"message": reply})
}

func (s *APIV1Service) getChatHistory(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return writeError(c, apierr.InvalidArgument("L'identifiant utilisateur est requis"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"history": s.Store.Conversations.History(userID),
	})
}

func (s *APIV1Service) clearChatHistory(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return writeError(c, apierr.InvalidArgument("L'identifiant utilisateur est requis"))
	}

	s.Store.Conversations.Clear(userID)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Historique effacé avec succès",
	})
}
