package ai

import (
	"fmt"
	"strings"

	"github.com/nahilou/caverne/store"
)

// The fallback generators below are pure functions of the request
// parameters. They produce legible, on-theme content with zero external
// dependency, so the gateway always has something to return when the
// generation service is down or answers with unparseable text.

// FallbackChatReply returns a canned reply keyed on the last user message.
func FallbackChatReply(lastUserMessage string) string {
	message := strings.ToLower(lastUserMessage)

	switch {
	case strings.Contains(message, "bonjour") || strings.Contains(message, "salut") || strings.Contains(message, "hello"):
		return "Bonjour ! 👋 Je suis Nahilou, ton ami de la caverne magique. Comment puis-je t'aider aujourd'hui ? Tu veux une histoire, un jeu ou tu as une question ?"
	case strings.Contains(message, "histoire"):
		return "J'adore les histoires ! 📚 Veux-tu une histoire sur des pirates, des dragons, ou des explorateurs de l'espace ? Dis-moi ce que tu préfères et je te raconterai une aventure passionnante !"
	case strings.Contains(message, "jeu"):
		return "Les jeux sont super amusants ! 🎮 Tu peux essayer notre jeu de mémoire avec les animaux ou le puzzle des nombres. Qu'est-ce qui te tente le plus ?"
	case strings.Contains(message, "animal"):
		return "Les animaux sont fascinants ! 🦁 Savais-tu que les éléphants peuvent communiquer sur de longues distances avec des sons que nous ne pouvons pas entendre ? Quel est ton animal préféré ?"
	case strings.Contains(message, "dessin"):
		return "J'adore dessiner ! 🎨 Dans notre espace créatif, tu peux créer des dessins magnifiques avec plein de couleurs. Qu'aimerais-tu dessiner aujourd'hui ?"
	default:
		return "C'est une super question ! 🌟 J'apprends encore plein de choses. Veux-tu explorer nos jeux, nos histoires interactives ou notre espace créatif ? Je suis là pour t'aider à t'amuser !"
	}
}

// FallbackStory builds a templated interactive story from the request
// parameters.
func FallbackStory(theme, protagonist, setting string) *store.Story {
	return &store.Story{
		Title:   fmt.Sprintf("L'aventure de %s dans %s", protagonist, setting),
		Preview: fmt.Sprintf("Une histoire passionnante sur le thème de %s, avec %s dans un univers de %s...", theme, protagonist, setting),
		Tags:    []string{theme, setting},
		Content: fmt.Sprintf("Il était une fois, dans un monde de %s, un héros nommé %s qui partait à l'aventure...", setting, protagonist),
		Choices: []store.StoryChoice{
			{ID: "choice1", Text: fmt.Sprintf("%s décide d'explorer la mystérieuse caverne", protagonist), NextSegment: "segment2"},
			{ID: "choice2", Text: fmt.Sprintf("%s préfère suivre le sentier lumineux", protagonist), NextSegment: "segment3"},
		},
		Segments: map[string]store.StorySegment{
			"segment2": {
				Content: fmt.Sprintf("En entrant dans la caverne, %s découvre des cristaux brillants qui illuminent les parois...", protagonist),
				Choices: []store.StoryChoice{
					{ID: "choice3", Text: fmt.Sprintf("%s touche l'un des cristaux", protagonist), NextSegment: "segment4"},
					{ID: "choice4", Text: fmt.Sprintf("%s continue plus profondément dans la caverne", protagonist), NextSegment: "segment5"},
				},
			},
			"segment3": {
				Content: fmt.Sprintf("Le sentier lumineux mène %s à une clairière magique où des créatures fantastiques dansent...", protagonist),
				Choices: []store.StoryChoice{
					{ID: "choice5", Text: fmt.Sprintf("%s se joint à la danse", protagonist), NextSegment: "segment6"},
					{ID: "choice6", Text: fmt.Sprintf("%s observe discrètement depuis les buissons", protagonist), NextSegment: "segment7"},
				},
			},
		},
	}
}

var questionOrdinals = []string{
	"Première", "Deuxième", "Troisième", "Quatrième", "Cinquième",
	"Sixième", "Septième", "Huitième", "Neuvième", "Dixième",
}

// FallbackQuiz builds a templated quiz with exactly questionCount
// questions, four options each, and a correct-answer index in [0,3].
func FallbackQuiz(category, difficulty string, questionCount int) *store.Quiz {
	questions := make([]store.QuizQuestion, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		ordinal := "Nouvelle"
		if i < len(questionOrdinals) {
			ordinal = questionOrdinals[i]
		}
		questions = append(questions, store.QuizQuestion{
			ID:            fmt.Sprintf("%d", i+1),
			Question:      fmt.Sprintf("%s question sur %s (%s)", ordinal, category, difficulty),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: i % 4,
		})
	}

	return &store.Quiz{
		Title:      fmt.Sprintf("Quiz sur %s", category),
		Category:   category,
		Difficulty: difficulty,
		Questions:  questions,
	}
}

// DrawingStory is the short story generated from a drawing description.
type DrawingStory struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FallbackDrawingStory builds a templated story from a drawing
// description, with a promptless variant.
func FallbackDrawingStory(description string) *DrawingStory {
	if description == "" {
		return &DrawingStory{
			Title:   "L'aventure du dessin magique",
			Content: "Il était une fois, dans un monde coloré comme ton dessin, un petit personnage qui adorait explorer et découvrir de nouveaux endroits. Un jour, en se promenant dans une forêt aux arbres multicolores, il trouva une clé dorée brillant sous un rayon de soleil. Cette clé, disait-on, ouvrait la porte d'un château magique où tous les rêves devenaient réalité. Notre héros décida de partir à la recherche de ce château, traversant des rivières scintillantes et des montagnes majestueuses. Après un long voyage rempli d'aventures et de rencontres avec des créatures fantastiques, il arriva enfin devant une immense porte ornée de symboles mystérieux...",
		}
	}

	return &DrawingStory{
		Title: fmt.Sprintf("L'histoire de %s", description),
		Content: fmt.Sprintf("Il était une fois, dans un monde merveilleux, %s qui vivait d'incroyables aventures. "+
			"Un jour, en se promenant dans la forêt enchantée, %s découvrit un trésor caché sous un arbre centenaire. "+
			"Ce trésor n'était pas fait d'or ou de pierres précieuses, mais de quelque chose de bien plus précieux : "+
			"des graines magiques qui, une fois plantées, exauçaient les vœux les plus chers. "+
			"%s décida alors de planter ces graines dans son jardin et attendit avec impatience de voir ce qui allait se passer...",
			description, description, description),
	}
}
