package v1

import (
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

func (s *APIV1Service) registerParentalRoutes(g *echo.Group) {
	g.GET("/parental/children/:childId/stats", s.getChildStats)
	g.PUT("/parental/children/:childId/time-limit", s.setTimeLimit)
	g.GET("/parental/children/:childId/activity", s.getActivityHistory)
	g.PUT("/parental/children/:childId/permissions", s.setPermissions)
}

// getChildStats returns the daily usage of a child: time spent per
// category, its total, the configured limits and the usage percentage
// against each limit.
func (s *APIV1Service) getChildStats(c echo.Context) error {
	child, ok := s.Store.Children.Get(c.Param("childId"))
	if !ok {
		return writeError(c, apierr.NotFound("Enfant non trouvé"))
	}

	totalTimeSpent := 0
	for _, minutes := range child.TimeSpent {
		totalTimeSpent += minutes
	}

	usagePercentage := make(map[string]int, len(child.TimeSpent))
	for category, minutes := range child.TimeSpent {
		limit := child.TimeLimits[category]
		if limit > 0 {
			usagePercentage[category] = int(math.Round(float64(minutes) / float64(limit) * 100))
		} else {
			usagePercentage[category] = 0
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"child": map[string]any{
			"id":   child.ID,
			"name": child.Name,
			"age":  child.Age,
		},
		"stats": map[string]any{
			"timeSpent":       child.TimeSpent,
			"totalTimeSpent":  totalTimeSpent,
			"timeLimits":      child.TimeLimits,
			"usagePercentage": usagePercentage,
		},
		"permissions": child.Permissions,
	})
}

type timeLimitRequest struct {
	Category string `json:"category"`
	Limit    *int   `json:"limit"`
}

func (s *APIV1Service) setTimeLimit(c echo.Context) error {
	var req timeLimitRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.Category == "" || req.Limit == nil || *req.Limit < 0 {
		return writeError(c, invalidArgument(
			"Informations invalides",
			"La catégorie et une limite de temps valide (en minutes) sont requises",
		))
	}

	if !s.Store.Children.SetTimeLimit(c.Param("childId"), req.Category, *req.Limit) {
		return writeError(c, apierr.NotFound("Enfant non trouvé"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":  "Limite de temps mise à jour avec succès",
		"category": req.Category,
		"limit":    *req.Limit,
	})
}

// getActivityHistory returns a child's activity log, optionally bounded
// by startDate/endDate query parameters, most recent first.
func (s *APIV1Service) getActivityHistory(c echo.Context) error {
	child, ok := s.Store.Children.Get(c.Param("childId"))
	if !ok {
		return writeError(c, apierr.NotFound("Enfant non trouvé"))
	}

	history := make([]store.Activity, len(child.ActivityHistory))
	copy(history, child.ActivityHistory)

	if start, ok := parseDate(c.QueryParam("startDate")); ok {
		history = filterActivities(history, func(a store.Activity) bool {
			return !a.Date.Before(start)
		})
	}
	if end, ok := parseDate(c.QueryParam("endDate")); ok {
		history = filterActivities(history, func(a store.Activity) bool {
			return !a.Date.After(end)
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return c.JSON(http.StatusOK, map[string]any{
		"child": map[string]string{
			"id":   child.ID,
			"name": child.Name,
		},
		"activityHistory": history,
	})
}

type permissionsRequest struct {
	Permissions map[string]bool `json:"permissions"`
}

func (s *APIV1Service) setPermissions(c echo.Context) error {
	var req permissionsRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.Permissions == nil {
		return writeError(c, invalidArgument(
			"Informations invalides",
			"Les permissions doivent être fournies sous forme d'objet",
		))
	}

	permissions, ok := s.Store.Children.SetPermissions(c.Param("childId"), req.Permissions)
	if !ok {
		return writeError(c, apierr.NotFound("Enfant non trouvé"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Permissions mises à jour avec succès",
		"permissions": permissions,
	})
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func filterActivities(activities []store.Activity, keep func(store.Activity) bool) []store.Activity {
	out := activities[:0]
	for _, activity := range activities {
		if keep(activity) {
			out = append(out, activity)
		}
	}
	return out
}
