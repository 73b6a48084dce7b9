package store

import (
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Drawing is a picture saved from the creative space canvas.
// ImageData holds the raw data-URL payload sent by the frontend.
type Drawing struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	ImageData string    `json:"imageData"`
	Date      time.Time `json:"date"`
}

// DrawingStore is the per-user repository of saved drawings.
type DrawingStore interface {
	Create(drawing *Drawing) *Drawing
	ListByUser(userID string) []*Drawing
	Get(userID, drawingID string) (*Drawing, bool)
}

type memoryDrawingStore struct {
	mu       sync.RWMutex
	drawings map[string][]*Drawing
}

// NewDrawingStore creates an empty in-memory drawing store.
func NewDrawingStore() DrawingStore {
	return &memoryDrawingStore{
		drawings: make(map[string][]*Drawing),
	}
}

func (s *memoryDrawingStore) Create(drawing *Drawing) *Drawing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if drawing.ID == "" {
		drawing.ID = shortuuid.New()
	}
	if drawing.Date.IsZero() {
		drawing.Date = time.Now()
	}
	s.drawings[drawing.UserID] = append(s.drawings[drawing.UserID], drawing)
	return drawing
}

func (s *memoryDrawingStore) ListByUser(userID string) []*Drawing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drawings := s.drawings[userID]
	out := make([]*Drawing, len(drawings))
	copy(out, drawings)
	return out
}

func (s *memoryDrawingStore) Get(userID, drawingID string) (*Drawing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, drawing := range s.drawings[userID] {
		if drawing.ID == drawingID {
			return drawing, true
		}
	}
	return nil, false
}
