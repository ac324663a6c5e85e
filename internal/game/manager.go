// Package game keeps track of games between human and computer players,
// each identified by a session ID.
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/errors"
)

// Manager holds the sessions of one process.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      *config.Config
}

// NewManager creates a manager whose computer players search with cfg.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
	}
}

// NewSession starts a game from the standard position with the given seats.
func (m *Manager) NewSession(white, black Seat) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		game:      engine.NewGame(),
		seats:     [2]Seat{white, black},
		cfg:       m.cfg,
		createdAt: now,
		updatedAt: now,
	}
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrSessionNotFound, "%q", id)
	}
	return s, nil
}

// Delete removes a session. It reports false if there was none.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Expire removes the sessions not updated since cutoff and returns how many
// were removed.
func (m *Manager) Expire(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.UpdatedAt().Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
