// Package session tracks the currently logged-in user for the lifetime of the
// process. Nothing here is persisted: a restart always starts unauthenticated.
package session

import (
	"sync"

	"github.com/swaupd/OsBlogApp/internal/models"
)

// Session holds at most one logged-in user. It is passed explicitly to the
// components that need it; Login and Logout are the only mutation points.
type Session struct {
	user *models.User
	mu   sync.RWMutex
}

// New creates an unauthenticated session.
func New() *Session {
	return &Session{}
}

// Login establishes user as the current user, replacing any previous one.
func (s *Session) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Logout clears the session. It is idempotent.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Current returns a copy of the logged-in user, if any.
func (s *Session) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
