package store

import (
	"sync"
	"time"
)

// Activity is one entry in a child's activity history.
type Activity struct {
	Date     time.Time `json:"date"`
	Activity string    `json:"activity"`
	Duration int       `json:"duration"`
	Category string    `json:"category"`
}

// Child holds the parental-dashboard data for one child.
type Child struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	// TimeSpent and TimeLimits are minutes per day, keyed by feature category.
	TimeSpent       map[string]int  `json:"timeSpent"`
	TimeLimits      map[string]int  `json:"timeLimits"`
	Permissions     map[string]bool `json:"permissions"`
	ActivityHistory []Activity      `json:"activityHistory"`
}

// ChildStore is the keyed repository of children for the parental dashboard.
type ChildStore interface {
	Get(id string) (*Child, bool)
	SetTimeLimit(id, category string, limit int) bool
	SetPermissions(id string, permissions map[string]bool) (map[string]bool, bool)
}

type memoryChildStore struct {
	mu       sync.RWMutex
	children map[string]*Child
}

// NewChildStore creates an in-memory child store seeded with demo data.
func NewChildStore() ChildStore {
	s := &memoryChildStore{
		children: make(map[string]*Child),
	}
	for _, child := range seedChildren() {
		s.children[child.ID] = child
	}
	return s
}

func (s *memoryChildStore) Get(id string) (*Child, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	child, ok := s.children[id]
	return child, ok
}

func (s *memoryChildStore) SetTimeLimit(id, category string, limit int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.children[id]
	if !ok {
		return false
	}
	child.TimeLimits[category] = limit
	return true
}

func (s *memoryChildStore) SetPermissions(id string, permissions map[string]bool) (map[string]bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.children[id]
	if !ok {
		return nil, false
	}
	for category, allowed := range permissions {
		child.Permissions[category] = allowed
	}
	out := make(map[string]bool, len(child.Permissions))
	for category, allowed := range child.Permissions {
		out[category] = allowed
	}
	return out, true
}

func seedChildren() []*Child {
	at := func(day, hour, min int) time.Time {
		return time.Date(2025, time.April, day, hour, min, 0, 0, time.UTC)
	}
	return []*Child{
		{
			ID:   "child1",
			Name: "Emma",
			Age:  8,
			TimeSpent: map[string]int{
				"games": 45, "stories": 30, "creative": 20, "quiz": 15, "chatbot": 10,
			},
			TimeLimits: map[string]int{
				"games": 60, "stories": 60, "creative": 60, "quiz": 60, "chatbot": 30, "total": 120,
			},
			Permissions: map[string]bool{
				"games": true, "stories": true, "creative": true, "quiz": true, "chatbot": true,
			},
			ActivityHistory: []Activity{
				{Date: at(6, 14, 30), Activity: "Puzzle des nombres", Duration: 15, Category: "games"},
				{Date: at(6, 15, 0), Activity: "La forêt enchantée", Duration: 20, Category: "stories"},
				{Date: at(6, 16, 0), Activity: "Dessin", Duration: 25, Category: "creative"},
			},
		},
		{
			ID:   "child2",
			Name: "Lucas",
			Age:  10,
			TimeSpent: map[string]int{
				"games": 60, "stories": 15, "creative": 10, "quiz": 30, "chatbot": 5,
			},
			TimeLimits: map[string]int{
				"games": 45, "stories": 60, "creative": 60, "quiz": 60, "chatbot": 30, "total": 120,
			},
			Permissions: map[string]bool{
				"games": true, "stories": true, "creative": true, "quiz": true, "chatbot": true,
			},
			ActivityHistory: []Activity{
				{Date: at(6, 13, 0), Activity: "Mémoire des animaux", Duration: 30, Category: "games"},
				{Date: at(6, 14, 0), Activity: "Quiz sur l'espace", Duration: 20, Category: "quiz"},
				{Date: at(6, 15, 30), Activity: "Labyrinthe magique", Duration: 25, Category: "games"},
			},
		},
	}
}
