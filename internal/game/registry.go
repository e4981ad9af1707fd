package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
)

var ErrSessionNotFound = errors.New("game session not found")

// Registry holds live game sessions in memory. Games in progress are
// never persisted; a session exists only for the lifetime of the process.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Controller
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Controller)}
}

func newSessionID() string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Add registers a controller and returns its session id.
func (r *Registry) Add(c *Controller) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := newSessionID()
	for r.sessions[id] != nil {
		id = newSessionID()
	}
	r.sessions[id] = c
	return id
}

func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
