package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChildStats(t *testing.T) {
	t.Run("ComputesTotalsAndPercentages", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodGet, "/api/v1/parental/children/child1/stats", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)

		child := body["child"].(map[string]any)
		assert.Equal(t, "Emma", child["name"])
		assert.Equal(t, float64(8), child["age"])

		stats := body["stats"].(map[string]any)
		// 45 + 30 + 20 + 15 + 10
		assert.Equal(t, float64(120), stats["totalTimeSpent"])

		percentages := stats["usagePercentage"].(map[string]any)
		// 45 of 60 minutes
		assert.Equal(t, float64(75), percentages["games"])
		// 10 of 30 minutes
		assert.Equal(t, float64(33), percentages["chatbot"])

		assert.Equal(t, true, body["permissions"].(map[string]any)["stories"])
	})

	t.Run("UnknownChild", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodGet, "/api/v1/parental/children/nope/stats", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Enfant non trouvé", decodeBody(t, rec)["error"])
	})
}

func TestSetTimeLimit(t *testing.T) {
	t.Run("UpdatesLimit", func(t *testing.T) {
		svc, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPut, "/api/v1/parental/children/child1/time-limit", map[string]any{
			"category": "games",
			"limit":    30,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Limite de temps mise à jour avec succès", body["message"])
		assert.Equal(t, float64(30), body["limit"])

		child, ok := svc.Store.Children.Get("child1")
		require.True(t, ok)
		assert.Equal(t, 30, child.TimeLimits["games"])
	})

	t.Run("NegativeLimit", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPut, "/api/v1/parental/children/child1/time-limit", map[string]any{
			"category": "games",
			"limit":    -1,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingLimit", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPut, "/api/v1/parental/children/child1/time-limit", map[string]any{
			"category": "games",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetActivityHistory(t *testing.T) {
	t.Run("SortedMostRecentFirst", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodGet, "/api/v1/parental/children/child1/activity", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		history := decodeBody(t, rec)["activityHistory"].([]any)
		require.Len(t, history, 3)
		assert.Equal(t, "Dessin", history[0].(map[string]any)["activity"])
		assert.Equal(t, "Puzzle des nombres", history[2].(map[string]any)["activity"])
	})

	t.Run("DateRangeFilter", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodGet,
			"/api/v1/parental/children/child1/activity?startDate=2025-04-06T15:00:00Z&endDate=2025-04-06T15:30:00Z", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		history := decodeBody(t, rec)["activityHistory"].([]any)
		require.Len(t, history, 1)
		assert.Equal(t, "La forêt enchantée", history[0].(map[string]any)["activity"])
	})
}

func TestSetPermissions(t *testing.T) {
	t.Run("MergesAndReturnsAll", func(t *testing.T) {
		svc, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPut, "/api/v1/parental/children/child2/permissions", map[string]any{
			"permissions": map[string]bool{"chatbot": false},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		permissions := decodeBody(t, rec)["permissions"].(map[string]any)
		assert.Equal(t, false, permissions["chatbot"])
		assert.Equal(t, true, permissions["games"])

		child, _ := svc.Store.Children.Get("child2")
		assert.False(t, child.Permissions["chatbot"])
	})

	t.Run("MissingPermissions", func(t *testing.T) {
		_, e := newTestService(t)
		rec := doRequest(t, e, http.MethodPut, "/api/v1/parental/children/child2/permissions", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
