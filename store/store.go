// Package store provides keyed, process-scoped repositories for all
// platform data. Every store hides its map behind an interface so a
// persistence backend can replace the in-memory implementation without
// touching call sites. There is no durability guarantee.
package store

// Store aggregates all repositories.
type Store struct {
	Conversations *ConversationStore
	Stories       StoryStore
	Quizzes       QuizStore
	Games         GameStore
	Drawings      DrawingStore
	Children      ChildStore
}

// New creates a new instance of Store with seeded catalogs.
func New() *Store {
	return &Store{
		Conversations: NewConversationStore(),
		Stories:       NewStoryStore(),
		Quizzes:       NewQuizStore(),
		Games:         NewGameStore(),
		Drawings:      NewDrawingStore(),
		Children:      NewChildStore(),
	}
}
