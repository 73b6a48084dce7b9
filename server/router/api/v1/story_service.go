package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

func (s *APIV1Service) registerStoryRoutes(g *echo.Group) {
	g.GET("/stories", s.listStories)
	g.GET("/stories/:id", s.getStory)
	g.POST("/stories/generate", s.generateStory)
	g.POST("/stories/:id/choice", s.saveStoryChoice)
}

func (s *APIV1Service) listStories(c echo.Context) error {
	stories := s.Store.Stories.List()
	summaries := make([]store.StorySummary, 0, len(stories))
	for _, story := range stories {
		summaries = append(summaries, story.Summary())
	}

	return c.JSON(http.StatusOK, map[string]any{"stories": summaries})
}

func (s *APIV1Service) getStory(c echo.Context) error {
	story, ok := s.Store.Stories.Get(c.Param("id"))
	if !ok {
		return writeError(c, apierr.NotFound("Histoire non trouvée"))
	}

	return c.JSON(http.StatusOK, map[string]any{"story": story})
}

type generateStoryRequest struct {
	Theme       string `json:"theme"`
	Protagonist string `json:"protagonist"`
	Setting     string `json:"setting"`
}

func (s *APIV1Service) generateStory(c echo.Context) error {
	var req generateStoryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.Theme == "" || req.Protagonist == "" || req.Setting == "" {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"Le thème, le protagoniste et le cadre sont requis pour générer une histoire",
		))
	}

	ctx := c.Request().Context()

	// The request parameters end up inside a prompt, so they go through
	// the same gate as chat messages.
	params := strings.Join([]string{req.Theme, req.Protagonist, req.Setting}, " ")
	if !s.Moderator.IsAppropriate(ctx, params) {
		return writeError(c, apierr.ContentRejected(
			"Paramètres inappropriés",
			"Ces idées ne sont pas adaptées pour une histoire d'enfants. Essaie avec d'autres idées !",
		))
	}

	story, err := s.Generator.Story(ctx, req.Theme, req.Protagonist, req.Setting)
	if err != nil {
		return writeError(c, err)
	}
	story = s.Store.Stories.Create(story)

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Histoire générée avec succès",
		"story":   story.Summary(),
	})
}

type storyChoiceRequest struct {
	UserID   string `json:"userId"`
	ChoiceID string `json:"choiceId"`
}

// saveStoryChoice resolves the segment a choice leads to. Choices are
// looked up in the story root and in every segment.
func (s *APIV1Service) saveStoryChoice(c echo.Context) error {
	var req storyChoiceRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.UserID == "" || req.ChoiceID == "" {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"L'identifiant de l'histoire, de l'utilisateur et du choix sont requis",
		))
	}

	story, ok := s.Store.Stories.Get(c.Param("id"))
	if !ok {
		return writeError(c, apierr.NotFound("Histoire non trouvée"))
	}

	nextSegment, ok := findChoice(story, req.ChoiceID)
	if !ok {
		return writeError(c, apierr.NotFound("Choix non trouvé"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":     "Choix sauvegardé avec succès",
		"nextSegment": nextSegment,
	})
}

func findChoice(story *store.Story, choiceID string) (string, bool) {
	for _, choice := range story.Choices {
		if choice.ID == choiceID {
			return choice.NextSegment, true
		}
	}
	for _, segment := range story.Segments {
		for _, choice := range segment.Choices {
			if choice.ID == choiceID {
				return choice.NextSegment, true
			}
		}
	}
	return "", false
}
