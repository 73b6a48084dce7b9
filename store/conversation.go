package store

import (
	"sync"
)

// Turn roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a conversation, tagged with its speaker role.
// Immutable once appended.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationStore keeps the bounded ordered history of turns for each
// user identifier. Process-scoped, no durability. All operations serialize
// same-key mutations so concurrent appends cannot overwrite each other.
type ConversationStore struct {
	mu        sync.RWMutex
	histories map[string][]Turn
}

// NewConversationStore creates an empty conversation store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		histories: make(map[string][]Turn),
	}
}

// History returns a copy of the ordered turns for the given user identifier.
// A user without history yields an empty slice.
func (s *ConversationStore) History(userID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.histories[userID]
	out := make([]Turn, len(history))
	copy(out, history)
	return out
}

// Len returns the number of turns stored for the given user identifier.
func (s *ConversationStore) Len(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.histories[userID])
}

// Append adds a turn at the end of the user's history. Turns are strictly
// ordered by insertion; there is no reordering or deduplication.
func (s *ConversationStore) Append(userID string, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories[userID] = append(s.histories[userID], turn)
}

// Trim bounds the user's history to 2*maxExchanges turns. When the turn
// count exceeds the bound it keeps turn[0] (the priming instructions)
// plus the most recent 2*maxExchanges-1 turns, discarding the middle.
// Idempotent once the history is at or below the bound.
func (s *ConversationStore) Trim(userID string, maxExchanges int) {
	if maxExchanges <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.histories[userID]
	limit := 2 * maxExchanges
	if len(history) <= limit {
		return
	}

	trimmed := make([]Turn, 0, limit)
	trimmed = append(trimmed, history[0])
	trimmed = append(trimmed, history[len(history)-(limit-1):]...)
	s.histories[userID] = trimmed
}

// Clear resets the user's history.
func (s *ConversationStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories[userID] = nil
}
