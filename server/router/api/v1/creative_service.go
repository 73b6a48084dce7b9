package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

func (s *APIV1Service) registerCreativeRoutes(g *echo.Group) {
	g.POST("/creative/drawings", s.saveDrawing)
	g.GET("/creative/drawings/:userId", s.listDrawings)
	g.POST("/creative/story", s.generateDrawingStory)
}

type saveDrawingRequest struct {
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	ImageData string `json:"imageData"`
}

func (s *APIV1Service) saveDrawing(c echo.Context) error {
	var req saveDrawingRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.UserID == "" || req.ImageData == "" {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"L'identifiant utilisateur et les données de l'image sont requis",
		))
	}
	if len(req.ImageData) > s.Profile.MaxDrawingBytes {
		return writeError(c, invalidArgument(
			"Image trop volumineuse",
			"L'image est trop volumineuse. Veuillez réduire sa taille.",
		))
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Dessin du %s", time.Now().Format("02/01/2006"))
	}

	drawing := s.Store.Drawings.Create(&store.Drawing{
		UserID:    req.UserID,
		Title:     title,
		ImageData: req.ImageData,
	})

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Dessin sauvegardé avec succès",
		"drawing": map[string]any{
			"id":    drawing.ID,
			"title": drawing.Title,
			"date":  drawing.Date,
		},
	})
}

type drawingMetadata struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Date         time.Time `json:"date"`
}

// listDrawings returns drawing metadata without the image payloads.
func (s *APIV1Service) listDrawings(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return writeError(c, apierr.InvalidArgument("L'identifiant utilisateur est requis"))
	}

	drawings := s.Store.Drawings.ListByUser(userID)
	metadata := make([]drawingMetadata, 0, len(drawings))
	for _, drawing := range drawings {
		metadata = append(metadata, drawingMetadata{
			ID:           drawing.ID,
			Title:        drawing.Title,
			ThumbnailURL: fmt.Sprintf("/api/v1/creative/drawings/%s/%s/thumbnail", userID, drawing.ID),
			Date:         drawing.Date,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{"drawings": metadata})
}

type drawingStoryRequest struct {
	UserID    string `json:"userId"`
	DrawingID string `json:"drawingId"`
	Prompt    string `json:"prompt"`
}

func (s *APIV1Service) generateDrawingStory(c echo.Context) error {
	var req drawingStoryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.UserID == "" || req.DrawingID == "" {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"L'identifiant utilisateur et l'identifiant du dessin sont requis",
		))
	}

	drawing, ok := s.Store.Drawings.Get(req.UserID, req.DrawingID)
	if !ok {
		return writeError(c, apierr.NotFound("Dessin non trouvé"))
	}

	ctx := c.Request().Context()

	if req.Prompt != "" && !s.Moderator.IsAppropriate(ctx, req.Prompt) {
		return writeError(c, apierr.ContentRejected(
			"Description inappropriée",
			"Cette description n'est pas adaptée pour les enfants. Essaie avec d'autres mots !",
		))
	}

	story, err := s.Generator.StoryFromDrawing(ctx, req.Prompt)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Histoire générée avec succès",
		"story": map[string]string{
			"title":   story.Title,
			"content": story.Content,
			"basedOn": drawing.Title,
		},
	})
}
