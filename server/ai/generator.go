package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	apierr "github.com/nahilou/caverne/server/internal/errors"
	"github.com/nahilou/caverne/store"
)

// ChatSystemPrompt primes the assistant persona. It is the first turn of
// every conversation and must stay turn 0 for the prompt to remain
// correctly primed after trimming.
const ChatSystemPrompt = `Tu es un assistant amical nommé Nahilou qui s'adresse à des enfants de 7 à 12 ans.
Utilise un langage simple et adapté à leur âge.
Sois encourageant, positif et bienveillant.
Évite tout contenu inapproprié ou effrayant.
Réponds de manière éducative et ludique.
Limite tes réponses à 3-4 phrases courtes.
N'hésite pas à utiliser des émojis adaptés pour rendre tes réponses plus vivantes.`

const storySystemPrompt = "Tu es un générateur d'histoires interactives pour enfants. Tu réponds uniquement au format JSON."

const quizSystemPrompt = "Tu es un générateur de quiz éducatifs pour enfants. Tu réponds uniquement au format JSON."

const drawingSystemPrompt = "Tu es un générateur d'histoires pour enfants basées sur leurs dessins. Tu réponds uniquement au format JSON."

const storyPromptTemplate = `Génère une histoire interactive pour enfants de 7 à 12 ans avec les éléments suivants:
- Thème: %s
- Protagoniste: %s
- Cadre: %s

L'histoire doit être structurée avec:
1. Un titre accrocheur
2. Une introduction qui présente le personnage et le cadre
3. Deux choix possibles pour continuer l'histoire
4. Pour chaque choix, une suite d'histoire avec deux nouveaux choix

Utilise un langage simple, adapté aux enfants. L'histoire doit être positive, éducative et sans contenu inapproprié.

Réponds au format JSON avec les champs "title", "preview", "tags", "content", "choices" (chaque choix avec "id", "text", "nextSegment") et "segments" (chaque segment avec "content" et "choices").`

const quizPromptTemplate = `Génère un quiz éducatif pour enfants de 7 à 12 ans avec les paramètres suivants:
- Catégorie: %s
- Difficulté: %s
- Nombre de questions: %d

Chaque question doit avoir 4 options de réponse, dont une seule est correcte.
Les questions doivent être adaptées à l'âge des enfants et être éducatives.

Réponds au format JSON avec les champs "title", "category", "difficulty" et "questions" (chaque question avec "id", "question", "options" et "correctAnswer", l'index de la bonne réponse entre 0 et 3).`

const drawingPromptTemplate = `Génère une courte histoire pour enfants basée sur cette description de dessin:
"%s"

L'histoire doit être adaptée aux enfants de 7 à 12 ans, positive et encourageante.
Utilise ton imagination pour créer une histoire magique et captivante.

Réponds au format JSON avec les champs "title" et "content" (environ 200-300 mots).`

// Generator is the generation proxy. One outbound call per request, no
// retries; transport failures and unparseable responses degrade to the
// deterministic fallback built from the request's own parameters. It
// raises only for caller-contract violations (missing parameters).
type Generator struct {
	completer ChatCompleter
	maxTokens int
}

// NewGenerator creates a generation proxy. A nil completer (AI disabled)
// makes every request resolve to its fallback.
func NewGenerator(completer ChatCompleter, maxTokens int) *Generator {
	if maxTokens <= 0 {
		maxTokens = 500
	}
	return &Generator{completer: completer, maxTokens: maxTokens}
}

// ChatReply produces the assistant's answer to the conversation so far.
// The history must already carry the priming turn at index 0 and end
// with the user's latest message.
func (g *Generator) ChatReply(ctx context.Context, history []store.Turn) (string, error) {
	if len(history) == 0 {
		return "", apierr.InvalidArgument("conversation history is empty")
	}

	lastUser := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == store.RoleUser {
			lastUser = history[i].Content
			break
		}
	}

	messages := make([]Message, len(history))
	for i, turn := range history {
		messages[i] = Message{Role: turn.Role, Content: turn.Content}
	}

	reply, err := g.complete(ctx, messages, CompletionOptions{MaxTokens: g.maxTokens, Temperature: 0.7})
	if err != nil {
		slog.Warn("chat generation degraded to fallback", "error", err)
		return FallbackChatReply(lastUser), nil
	}
	return reply, nil
}

// Story generates an interactive story from the user's preferences.
func (g *Generator) Story(ctx context.Context, theme, protagonist, setting string) (*store.Story, error) {
	if theme == "" || protagonist == "" || setting == "" {
		return nil, apierr.InvalidArgument("theme, protagonist and setting are required")
	}

	response, err := g.complete(ctx, []Message{
		{Role: RoleSystem, Content: storySystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf(storyPromptTemplate, theme, protagonist, setting)},
	}, CompletionOptions{MaxTokens: 2000, Temperature: 0.8})
	if err != nil {
		slog.Warn("story generation degraded to fallback", "error", err)
		return FallbackStory(theme, protagonist, setting), nil
	}

	var story store.Story
	if !decodeResponse(response, &story) || story.Title == "" {
		slog.Warn("story response unparseable, using fallback")
		return FallbackStory(theme, protagonist, setting), nil
	}
	story.ID = ""
	return &story, nil
}

// Quiz generates an educational quiz from the user's preferences.
func (g *Generator) Quiz(ctx context.Context, category, difficulty string, questionCount int) (*store.Quiz, error) {
	if category == "" || difficulty == "" {
		return nil, apierr.InvalidArgument("category and difficulty are required")
	}
	if questionCount < 1 || questionCount > 10 {
		return nil, apierr.InvalidArgumentf("question count %d out of range [1,10]", questionCount)
	}

	response, err := g.complete(ctx, []Message{
		{Role: RoleSystem, Content: quizSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf(quizPromptTemplate, category, difficulty, questionCount)},
	}, CompletionOptions{MaxTokens: 1500, Temperature: 0.5})
	if err != nil {
		slog.Warn("quiz generation degraded to fallback", "error", err)
		return FallbackQuiz(category, difficulty, questionCount), nil
	}

	var quiz store.Quiz
	if !decodeResponse(response, &quiz) || !quizUsable(&quiz) {
		slog.Warn("quiz response unparseable, using fallback")
		return FallbackQuiz(category, difficulty, questionCount), nil
	}
	quiz.ID = ""
	quiz.Category = category
	quiz.Difficulty = difficulty
	return &quiz, nil
}

// StoryFromDrawing generates a short story from a drawing description.
func (g *Generator) StoryFromDrawing(ctx context.Context, description string) (*DrawingStory, error) {
	response, err := g.complete(ctx, []Message{
		{Role: RoleSystem, Content: drawingSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf(drawingPromptTemplate, description)},
	}, CompletionOptions{MaxTokens: 1000, Temperature: 0.8})
	if err != nil {
		slog.Warn("drawing story generation degraded to fallback", "error", err)
		return FallbackDrawingStory(description), nil
	}

	var story DrawingStory
	if !decodeResponse(response, &story) || story.Title == "" || story.Content == "" {
		slog.Warn("drawing story response unparseable, using fallback")
		return FallbackDrawingStory(description), nil
	}
	return &story, nil
}

func (g *Generator) complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	if g.completer == nil {
		return "", apierr.UpstreamUnavailable("generation service not configured", nil)
	}
	return g.completer.Complete(ctx, messages, opts)
}

// decodeResponse extracts and unmarshals the JSON document of a
// generative response into out.
func decodeResponse(response string, out any) bool {
	doc, ok := ExtractJSON(response)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(doc), out) == nil
}

// quizUsable rejects parsed quizzes that would break the frontend
// contract: every question needs 4 options and an answer index in range.
func quizUsable(quiz *store.Quiz) bool {
	if len(quiz.Questions) == 0 {
		return false
	}
	for _, question := range quiz.Questions {
		if len(question.Options) != 4 {
			return false
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer > 3 {
			return false
		}
	}
	return true
}
