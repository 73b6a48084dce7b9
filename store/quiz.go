package store

import (
	"sync"

	"github.com/lithammer/shortuuid/v4"
)

// QuizQuestion is one question with four options, exactly one of which
// is correct. CorrectAnswer is the index of the correct option in [0,3].
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz is an educational quiz.
type Quiz struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Category   string         `json:"category"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions"`
}

// QuizSummary is the catalog view of a quiz, without its questions.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
}

// Summary returns the catalog view of the quiz.
func (q *Quiz) Summary() QuizSummary {
	return QuizSummary{
		ID:            q.ID,
		Title:         q.Title,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		QuestionCount: len(q.Questions),
	}
}

// QuizStore is the keyed repository of quizzes.
type QuizStore interface {
	List() []*Quiz
	Get(id string) (*Quiz, bool)
	Create(quiz *Quiz) *Quiz
}

type memoryQuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]*Quiz
	order   []string
}

// NewQuizStore creates an in-memory quiz store seeded with the catalog.
func NewQuizStore() QuizStore {
	s := &memoryQuizStore{
		quizzes: make(map[string]*Quiz),
	}
	for _, quiz := range seedQuizzes() {
		s.put(quiz)
	}
	return s
}

func (s *memoryQuizStore) put(quiz *Quiz) {
	s.quizzes[quiz.ID] = quiz
	s.order = append(s.order, quiz.ID)
}

func (s *memoryQuizStore) List() []*Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Quiz, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.quizzes[id])
	}
	return out
}

func (s *memoryQuizStore) Get(id string) (*Quiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quiz, ok := s.quizzes[id]
	return quiz, ok
}

func (s *memoryQuizStore) Create(quiz *Quiz) *Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quiz.ID == "" {
		quiz.ID = shortuuid.New()
	}
	s.put(quiz)
	return quiz
}

func seedQuizzes() []*Quiz {
	return []*Quiz{
		{
			ID:         "1",
			Title:      "Quiz sur les animaux",
			Category:   "Nature",
			Difficulty: "facile",
			Questions: []QuizQuestion{
				{
					ID:            "1",
					Question:      "Quel animal est le plus grand du monde ?",
					Options:       []string{"Éléphant", "Girafe", "Baleine bleue", "Dinosaure"},
					CorrectAnswer: 2,
				},
				{
					ID:            "2",
					Question:      "Combien de pattes a une araignée ?",
					Options:       []string{"4", "6", "8", "10"},
					CorrectAnswer: 2,
				},
				{
					ID:            "3",
					Question:      "Quel animal peut voler ?",
					Options:       []string{"Pingouin", "Autruche", "Chauve-souris", "Poisson"},
					CorrectAnswer: 2,
				},
			},
		},
		{
			ID:         "2",
			Title:      "Quiz sur l'espace",
			Category:   "Sciences",
			Difficulty: "moyen",
			Questions: []QuizQuestion{
				{
					ID:            "1",
					Question:      "Quelle est la planète la plus proche du Soleil ?",
					Options:       []string{"Vénus", "Terre", "Mars", "Mercure"},
					CorrectAnswer: 3,
				},
				{
					ID:            "2",
					Question:      "Combien de planètes y a-t-il dans notre système solaire ?",
					Options:       []string{"7", "8", "9", "10"},
					CorrectAnswer: 1,
				},
				{
					ID:            "3",
					Question:      "Comment s'appelle notre galaxie ?",
					Options:       []string{"Andromède", "Voie Lactée", "Grande Ourse", "Petite Ourse"},
					CorrectAnswer: 1,
				},
			},
		},
	}
}
