package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pyramid-solitaire-server/pkg/deck"
	"pyramid-solitaire-server/pkg/pyramid"
)

// Registry holds the games currently in progress, keyed by session ID
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	logger   logrus.FieldLogger
}

// NewRegistry returns an empty registry
func NewRegistry(logger logrus.FieldLogger) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger,
	}
}

// Create deals a new game from a fresh deck and registers a session for it
func (r *Registry) Create(options pyramid.Options) (*Session, error) {
	id := uuid.New()

	game, err := pyramid.NewGame(r.logger.WithField("session", id), deck.New().Cards, options)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		game:      game,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.WithField("session", s.ID).Info("created session")
	return s, nil
}

// Get returns the session with the given ID, or nil if it does not exist
func (r *Registry) Get(id uuid.UUID) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sessions[id]
}

// Delete removes a session. Returns false if the session did not exist
func (r *Registry) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}

	delete(r.sessions, id)
	return true
}

// Len returns the number of registered sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// Sweep drops sessions older than maxAge and returns how many were removed.
// Abandoned games have no other way to leave the registry
func (r *Registry) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		r.logger.WithField("count", removed).Info("swept expired sessions")
	}

	return removed
}
