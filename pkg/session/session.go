package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pyramid-solitaire-server/pkg/pyramid"
)

// Session is a single running game owned by one client.
// The engine is not safe for concurrent use, so every call goes through the
// session mutex
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu   sync.Mutex
	game *pyramid.Game
}

// State returns a snapshot of the game state
func (s *Session) State() (*pyramid.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.State()
}

// Act performs a client action against the game and returns the updated state
func (s *Session) Act(payload *pyramid.PayloadIn) (*pyramid.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Action(payload)
}
