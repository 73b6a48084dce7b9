package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahilou/caverne/server/ai"
	"github.com/nahilou/caverne/store"
)

func TestSendChatMessage(t *testing.T) {
	t.Run("MissingMessage", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{"userId": "u1"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Le message est requis", decodeBody(t, rec)["error"])
	})

	t.Run("MissingUserID", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{"message": "bonjour"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "L'identifiant utilisateur est requis", decodeBody(t, rec)["error"])
	})

	t.Run("InappropriateMessageLeavesHistoryUntouched", func(t *testing.T) {
		svc, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{
			"message": "I want to talk about a gun",
			"userId":  "u1",
		})

		require.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Message inapproprié", body["error"])
		assert.Equal(t, "Ce message n'est pas adapté pour les enfants. Essaie de poser une autre question !", body["message"])
		assert.Equal(t, 0, svc.Store.Conversations.Len("u1"))
	})

	t.Run("ExchangeAppendsThreeTurnsOnFirstMessage", func(t *testing.T) {
		svc, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{
			"message": "bonjour",
			"userId":  "u1",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		// no AI configured, so the reply is the deterministic fallback
		assert.Equal(t, ai.FallbackChatReply("bonjour"), decodeBody(t, rec)["message"])

		history := svc.Store.Conversations.History("u1")
		require.Len(t, history, 3)
		assert.Equal(t, store.RoleSystem, history[0].Role)
		assert.Equal(t, ai.ChatSystemPrompt, history[0].Content)
		assert.Equal(t, store.RoleUser, history[1].Role)
		assert.Equal(t, "bonjour", history[1].Content)
		assert.Equal(t, store.RoleAssistant, history[2].Role)
	})

	t.Run("HistoryStaysBounded", func(t *testing.T) {
		svc, e := newTestService(t)
		svc.Profile.MaxHistoryExchanges = 3

		for i := 0; i < 10; i++ {
			rec := doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{
				"message": "raconte-moi une histoire",
				"userId":  "u1",
			})
			require.Equal(t, http.StatusOK, rec.Code)
		}

		history := svc.Store.Conversations.History("u1")
		// the assistant turn lands after the trim, so the bound can be
		// exceeded by one until the next exchange
		assert.LessOrEqual(t, len(history), 2*svc.Profile.MaxHistoryExchanges+1)
		assert.Equal(t, ai.ChatSystemPrompt, history[0].Content)
	})
}

func TestChatHistoryEndpoints(t *testing.T) {
	svc, e := newTestService(t)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/chatbot/history/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["history"])

	doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{
		"message": "bonjour",
		"userId":  "u1",
	})

	rec = doRequest(t, e, http.MethodGet, "/api/v1/chatbot/history/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["history"], 3)

	rec = doRequest(t, e, http.MethodDelete, "/api/v1/chatbot/history/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Historique effacé avec succès", decodeBody(t, rec)["message"])
	assert.Equal(t, 0, svc.Store.Conversations.Len("u1"))
}
