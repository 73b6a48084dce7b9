package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/nahilou/caverne/internal/profile"
	"github.com/nahilou/caverne/store"
)

// newTestService builds the API service without a generation service
// configured, so every AI-backed route resolves to its deterministic
// fallback.
func newTestService(t *testing.T) (*APIV1Service, *echo.Echo) {
	t.Helper()

	p := &profile.Profile{Mode: "demo", Port: 5000, Version: "test"}
	require.NoError(t, p.Validate())

	svc := NewAPIV1Service(p, store.New())
	e := echo.New()
	svc.RegisterRoutes(e)
	return svc, e
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteErrorMapping(t *testing.T) {
	_, e := newTestService(t)

	t.Run("MissingFieldIs400", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{"userId": "u1"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownEntityIs404", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/stories/nope", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("RejectedContentIs403", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/v1/chatbot/message", map[string]any{
			"message": "parle-moi de la violence",
			"userId":  "u1",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
