package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Game is a mini-game entry in the catalog.
type Game struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Difficulty   string `json:"difficulty"`
	Type         string `json:"type"`
	ImageURL     string `json:"imageUrl"`
	Instructions string `json:"instructions"`
	MinAge       int    `json:"minAge"`
	MaxAge       int    `json:"maxAge"`
}

// Score is one leaderboard entry for a game.
type Score struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Date     time.Time `json:"date"`
}

// GameStore is the keyed repository of games and their leaderboards.
type GameStore interface {
	List() []*Game
	Get(id string) (*Game, bool)
	// SaveScore records a score for the game and returns its rank on the
	// leaderboard. The rank is derived from the inserted entry's own id,
	// so scores sharing a timestamp cannot be confused.
	SaveScore(gameID string, userID, username string, points int) (rank int, ok bool)
	Leaderboard(gameID string, limit int) ([]Score, bool)
}

type memoryGameStore struct {
	mu     sync.RWMutex
	games  map[string]*Game
	order  []string
	scores map[string][]Score
}

// NewGameStore creates an in-memory game store seeded with the catalog
// and a demo leaderboard.
func NewGameStore() GameStore {
	s := &memoryGameStore{
		games:  make(map[string]*Game),
		scores: make(map[string][]Score),
	}
	for _, game := range seedGames() {
		s.games[game.ID] = game
		s.order = append(s.order, game.ID)
	}
	for gameID, scores := range seedScores() {
		s.scores[gameID] = scores
		s.sortScores(gameID)
	}
	return s
}

func (s *memoryGameStore) List() []*Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Game, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.games[id])
	}
	return out
}

func (s *memoryGameStore) Get(id string) (*Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	return game, ok
}

func (s *memoryGameStore) SaveScore(gameID string, userID, username string, points int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return 0, false
	}

	entry := Score{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: username,
		Score:    points,
		Date:     time.Now(),
	}
	s.scores[gameID] = append(s.scores[gameID], entry)
	s.sortScores(gameID)

	for i, score := range s.scores[gameID] {
		if score.ID == entry.ID {
			return i + 1, true
		}
	}
	return 0, false
}

func (s *memoryGameStore) Leaderboard(gameID string, limit int) ([]Score, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.games[gameID]; !ok {
		return nil, false
	}

	scores := s.scores[gameID]
	if limit > 0 && limit < len(scores) {
		scores = scores[:limit]
	}
	out := make([]Score, len(scores))
	copy(out, scores)
	return out, true
}

// sortScores orders a leaderboard by score descending. The sort is stable
// so earlier submissions keep their rank on ties.
func (s *memoryGameStore) sortScores(gameID string) {
	sort.SliceStable(s.scores[gameID], func(i, j int) bool {
		return s.scores[gameID][i].Score > s.scores[gameID][j].Score
	})
}

func seedGames() []*Game {
	return []*Game{
		{
			ID:           "1",
			Title:        "Puzzle des nombres",
			Description:  "Apprends à compter en t'amusant avec ce puzzle coloré !",
			Difficulty:   "facile",
			Type:         "puzzle",
			ImageURL:     "/assets/games/number-puzzle.png",
			Instructions: "Place les nombres dans le bon ordre pour compléter le puzzle.",
			MinAge:       7,
			MaxAge:       9,
		},
		{
			ID:           "2",
			Title:        "Mémoire des animaux",
			Description:  "Retrouve les paires d'animaux et améliore ta mémoire !",
			Difficulty:   "moyen",
			Type:         "memory",
			ImageURL:     "/assets/games/animal-memory.png",
			Instructions: "Retourne les cartes deux par deux pour trouver les paires d'animaux identiques.",
			MinAge:       7,
			MaxAge:       12,
		},
		{
			ID:           "3",
			Title:        "Labyrinthe magique",
			Description:  "Trouve ton chemin à travers ce labyrinthe enchanté !",
			Difficulty:   "difficile",
			Type:         "maze",
			ImageURL:     "/assets/games/magic-maze.png",
			Instructions: "Guide le personnage à travers le labyrinthe en évitant les obstacles.",
			MinAge:       9,
			MaxAge:       12,
		},
	}
}

func seedScores() map[string][]Score {
	day := func(d int) time.Time {
		return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
	}
	return map[string][]Score{
		"1": {
			{ID: uuid.NewString(), UserID: "user1", Username: "Emma", Score: 95, Date: day(1)},
			{ID: uuid.NewString(), UserID: "user2", Username: "Lucas", Score: 87, Date: day(2)},
			{ID: uuid.NewString(), UserID: "user3", Username: "Léa", Score: 92, Date: day(3)},
		},
		"2": {
			{ID: uuid.NewString(), UserID: "user2", Username: "Lucas", Score: 78, Date: day(1)},
			{ID: uuid.NewString(), UserID: "user1", Username: "Emma", Score: 85, Date: day(2)},
			{ID: uuid.NewString(), UserID: "user4", Username: "Noah", Score: 90, Date: day(3)},
		},
		"3": {
			{ID: uuid.NewString(), UserID: "user3", Username: "Léa", Score: 65, Date: day(1)},
			{ID: uuid.NewString(), UserID: "user4", Username: "Noah", Score: 72, Date: day(2)},
			{ID: uuid.NewString(), UserID: "user2", Username: "Lucas", Score: 68, Date: day(3)},
		},
	}
}
