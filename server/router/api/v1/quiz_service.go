package v1

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

func (s *APIV1Service) registerQuizRoutes(g *echo.Group) {
	g.GET("/quiz", s.listQuizzes)
	g.GET("/quiz/:id", s.getQuiz)
	g.POST("/quiz/generate", s.generateQuiz)
	g.POST("/quiz/:id/submit", s.submitQuizAnswers)
}

func (s *APIV1Service) listQuizzes(c echo.Context) error {
	quizzes := s.Store.Quizzes.List()
	summaries := make([]store.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, quiz.Summary())
	}

	return c.JSON(http.StatusOK, map[string]any{"quizzes": summaries})
}

func (s *APIV1Service) getQuiz(c echo.Context) error {
	quiz, ok := s.Store.Quizzes.Get(c.Param("id"))
	if !ok {
		return writeError(c, apierr.NotFound("Quiz non trouvé"))
	}

	return c.JSON(http.StatusOK, map[string]any{"quiz": quiz})
}

type generateQuizRequest struct {
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
}

func (s *APIV1Service) generateQuiz(c echo.Context) error {
	var req generateQuizRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.Category == "" || req.Difficulty == "" || req.QuestionCount == 0 {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"La catégorie, la difficulté et le nombre de questions sont requis pour générer un quiz",
		))
	}
	if req.QuestionCount < 1 || req.QuestionCount > 10 {
		return writeError(c, invalidArgument(
			"Nombre de questions invalide",
			"Le nombre de questions doit être compris entre 1 et 10",
		))
	}

	quiz, err := s.Generator.Quiz(c.Request().Context(), req.Category, req.Difficulty, req.QuestionCount)
	if err != nil {
		return writeError(c, err)
	}
	quiz = s.Store.Quizzes.Create(quiz)

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Quiz généré avec succès",
		"quiz":    quiz.Summary(),
	})
}

type submitQuizRequest struct {
	UserID  string `json:"userId"`
	Answers []int  `json:"answers"`
}

type answerResult struct {
	QuestionID    string `json:"questionId"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

func (s *APIV1Service) submitQuizAnswers(c echo.Context) error {
	var req submitQuizRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.UserID == "" || req.Answers == nil {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"L'identifiant du quiz, de l'utilisateur et les réponses sont requis",
		))
	}

	quiz, ok := s.Store.Quizzes.Get(c.Param("id"))
	if !ok {
		return writeError(c, apierr.NotFound("Quiz non trouvé"))
	}

	if len(req.Answers) != len(quiz.Questions) {
		return writeError(c, invalidArgument(
			"Nombre de réponses invalide",
			"Le nombre de réponses doit correspondre au nombre de questions",
		))
	}

	score := 0
	results := make([]answerResult, 0, len(quiz.Questions))
	for i, question := range quiz.Questions {
		isCorrect := req.Answers[i] == question.CorrectAnswer
		if isCorrect {
			score++
		}
		results = append(results, answerResult{
			QuestionID:    question.ID,
			UserAnswer:    req.Answers[i],
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
		})
	}

	percentage := int(math.Round(float64(score) / float64(len(quiz.Questions)) * 100))

	return c.JSON(http.StatusOK, map[string]any{
		"message":    "Réponses soumises avec succès",
		"score":      score,
		"total":      len(quiz.Questions),
		"percentage": percentage,
		"results":    results,
	})
}
