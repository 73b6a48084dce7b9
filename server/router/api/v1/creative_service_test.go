package v1

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahilou/caverne/server/ai"
	"github.com/nahilou/caverne/store"
)

func TestSaveDrawing(t *testing.T) {
	t.Run("SavesAndReturnsMetadata", func(t *testing.T) {
		svc, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/creative/drawings", map[string]any{
			"userId":    "u1",
			"title":     "Mon chat",
			"imageData": "data:image/png;base64,AAAA",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Dessin sauvegardé avec succès", body["message"])

		drawing := body["drawing"].(map[string]any)
		assert.Equal(t, "Mon chat", drawing["title"])
		assert.NotEmpty(t, drawing["id"])
		// the response carries metadata only
		assert.NotContains(t, drawing, "imageData")

		require.Len(t, svc.Store.Drawings.ListByUser("u1"), 1)
	})

	t.Run("DefaultTitle", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/creative/drawings", map[string]any{
			"userId":    "u1",
			"imageData": "data:image/png;base64,AAAA",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		drawing := decodeBody(t, rec)["drawing"].(map[string]any)
		assert.True(t, strings.HasPrefix(drawing["title"].(string), "Dessin du "))
	})

	t.Run("OversizedImage", func(t *testing.T) {
		svc, e := newTestService(t)
		svc.Profile.MaxDrawingBytes = 10

		rec := doRequest(t, e, http.MethodPost, "/api/v1/creative/drawings", map[string]any{
			"userId":    "u1",
			"imageData": strings.Repeat("A", 11),
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Image trop volumineuse", decodeBody(t, rec)["error"])
	})

	t.Run("MissingImageData", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/creative/drawings", map[string]any{"userId": "u1"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListDrawings(t *testing.T) {
	svc, e := newTestService(t)
	svc.Store.Drawings.Create(&store.Drawing{UserID: "u1", Title: "Fusée", ImageData: "data:..."})

	rec := doRequest(t, e, http.MethodGet, "/api/v1/creative/drawings/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	drawings := decodeBody(t, rec)["drawings"].([]any)
	require.Len(t, drawings, 1)
	first := drawings[0].(map[string]any)
	assert.Equal(t, "Fusée", first["title"])
	assert.Contains(t, first["thumbnailUrl"], "/thumbnail")
	assert.NotContains(t, first, "imageData")
}

func TestGenerateDrawingStory(t *testing.T) {
	t.Run("FallbackStoryFromPrompt", func(t *testing.T) {
		svc, e := newTestService(t)
		drawing := svc.Store.Drawings.Create(&store.Drawing{UserID: "u1", Title: "Mon dragon", ImageData: "data:..."})

		rec := doRequest(t, e, http.MethodPost, "/api/v1/creative/story", map[string]any{
			"userId":    "u1",
			"drawingId": drawing.ID,
			"prompt":    "un dragon vert",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		story := decodeBody(t, rec)["story"].(map[string]any)
		assert.Equal(t, ai.FallbackDrawingStory("un dragon vert").Title, story["title"])
		assert.Equal(t, "Mon dragon", story["basedOn"])
	})

	t.Run("UnknownDrawing", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPost, "/api/v1/creative/story", map[string]any{
			"userId":    "u1",
			"drawingId": "nope",
		})

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Dessin non trouvé", decodeBody(t, rec)["error"])
	})

	t.Run("InappropriatePrompt", func(t *testing.T) {
		svc, e := newTestService(t)
		drawing := svc.Store.Drawings.Create(&store.Drawing{UserID: "u1", Title: "Dessin", ImageData: "data:..."})

		rec := doRequest(t, e, http.MethodPost, "/api/v1/creative/story", map[string]any{
			"userId":    "u1",
			"drawingId": drawing.ID,
			"prompt":    "une arme secrète",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
