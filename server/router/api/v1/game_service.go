package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

func (s *APIV1Service) registerGameRoutes(g *echo.Group) {
	g.GET("/games", s.listGames)
	g.GET("/games/:id", s.getGame)
	g.POST("/games/:id/score", s.saveGameScore)
	g.GET("/games/:id/leaderboard", s.getGameLeaderboard)
}

// listGames returns the game catalog, optionally filtered by the
// child's age via the "age" query parameter.
func (s *APIV1Service) listGames(c echo.Context) error {
	games := s.Store.Games.List()

	if raw := c.QueryParam("age"); raw != "" {
		if age, err := strconv.Atoi(raw); err == nil {
			filtered := make([]*store.Game, 0, len(games))
			for _, game := range games {
				if age >= game.MinAge && age <= game.MaxAge {
					filtered = append(filtered, game)
				}
			}
			games = filtered
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"games": games})
}

func (s *APIV1Service) getGame(c echo.Context) error {
	game, ok := s.Store.Games.Get(c.Param("id"))
	if !ok {
		return writeError(c, apierr.NotFound("Jeu non trouvé"))
	}

	return c.JSON(http.StatusOK, map[string]any{"game": game})
}

type saveScoreRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Score    *int   `json:"score"`
}

func (s *APIV1Service) saveGameScore(c echo.Context) error {
	var req saveScoreRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.UserID == "" || req.Username == "" || req.Score == nil {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"L'identifiant du jeu, de l'utilisateur, le nom d'utilisateur et le score sont requis",
		))
	}
	if *req.Score < 0 {
		return writeError(c, invalidArgument(
			"Score invalide",
			"Le score doit être un nombre positif",
		))
	}

	rank, ok := s.Store.Games.SaveScore(c.Param("id"), req.UserID, req.Username, *req.Score)
	if !ok {
		return writeError(c, apierr.NotFound("Jeu non trouvé"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Score sauvegardé avec succès",
		"rank":    rank,
	})
}

type leaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
}

func (s *APIV1Service) getGameLeaderboard(c echo.Context) error {
	game, ok := s.Store.Games.Get(c.Param("id"))
	if !ok {
		return writeError(c, apierr.NotFound("Jeu non trouvé"))
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	scores, _ := s.Store.Games.Leaderboard(game.ID, limit)
	entries := make([]leaderboardEntry, 0, len(scores))
	for i, score := range scores {
		entries = append(entries, leaderboardEntry{
			Rank:     i + 1,
			Username: score.Username,
			Score:    score.Score,
			Date:     score.Date.Format("2006-01-02"),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"game": map[string]string{
			"id":    game.ID,
			"title": game.Title,
		},
		"leaderboard": entries,
	})
}
