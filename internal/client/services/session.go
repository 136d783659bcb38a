package services

import (
	"context"
	"fmt"

	"github.com/mrezendes/investrack/internal/client/models"
	"github.com/mrezendes/investrack/internal/client/store"
	"github.com/mrezendes/investrack/internal/logging"
)

// Session tracks the zero-or-one logged-in identity. Its presence is the
// sole signal that protected commands may run; callers decide what to gate
// on Current.
type Session struct {
	store store.Store
	log   logging.Logger

	current *models.SessionIdentity
}

// NewSession constructs a Session over the given store. Call Load before
// using it.
func NewSession(s store.Store, log logging.Logger) *Session {
	return &Session{store: s, log: log}
}

// Load reads the persisted session, if any. A missing or unreadable value
// means nobody is logged in.
func (s *Session) Load(ctx context.Context) error {
	id, ok, err := store.Load[models.SessionIdentity](ctx, s.store, store.KeySession, s.log)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		s.current = nil
		return nil
	}
	s.current = &id
	return nil
}

// Current returns the logged-in identity, or ok=false when there is none.
func (s *Session) Current() (models.SessionIdentity, bool) {
	if s.current == nil {
		return models.SessionIdentity{}, false
	}
	return *s.current, true
}

// Login stores the name+email projection of cred as the session, replacing
// any prior one.
func (s *Session) Login(ctx context.Context, cred models.UserCredential) error {
	id := models.ProjectIdentity(cred)
	if err := store.Save(ctx, s.store, store.KeySession, id); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.current = &id
	return nil
}

// Logout clears the in-memory and persisted session. Logging out with no
// session is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, store.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.current = nil
	return nil
}
