package services

import (
	"context"
	"fmt"

	"github.com/mrezendes/investrack/internal/client/models"
	"github.com/mrezendes/investrack/internal/client/store"
	"github.com/mrezendes/investrack/internal/common"
	"github.com/mrezendes/investrack/internal/logging"
)

// Directory is the set of registered credentials. It supports lookup by
// email and registration of new users; entries are never edited or removed.
//
// Credentials are matched in plain text, exactly as stored. This preserves
// the behavior of the tracked system and must not be mistaken for a secure
// authentication scheme.
type Directory struct {
	store store.Store
	log   logging.Logger

	users []models.UserCredential
}

// NewDirectory constructs a Directory over the given store. Call Load before
// using it.
func NewDirectory(s store.Store, log logging.Logger) *Directory {
	return &Directory{store: s, log: log}
}

// Load reads the persisted directory. A missing or unreadable value yields
// an empty directory.
func (d *Directory) Load(ctx context.Context) error {
	users, _, err := store.Load[[]models.UserCredential](ctx, d.store, store.KeyUsers, d.log)
	if err != nil {
		return fmt.Errorf("failed to load user directory: %w", err)
	}
	d.users = users
	return nil
}

// Size returns the number of registered users.
func (d *Directory) Size() int {
	return len(d.users)
}

// FindByEmail returns the credential registered under email, if any.
// Matching is exact and case-sensitive.
func (d *Directory) FindByEmail(email string) (models.UserCredential, bool) {
	for _, u := range d.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.UserCredential{}, false
}

// Register appends a new credential and persists the directory. It fails
// with common.ErrorEmailAlreadyExists when the email is taken. If persisting
// fails the in-memory directory is left unchanged.
func (d *Directory) Register(ctx context.Context, name, email, password string) error {
	if _, ok := d.FindByEmail(email); ok {
		return fmt.Errorf("registering %s: %w", email, common.ErrorEmailAlreadyExists)
	}

	next := append(append([]models.UserCredential(nil), d.users...),
		models.UserCredential{Name: name, Email: email, Password: password})

	if err := store.Save(ctx, d.store, store.KeyUsers, next); err != nil {
		return fmt.Errorf("failed to persist user directory: %w", err)
	}
	d.users = next
	return nil
}

// Authenticate returns the credential whose email and password both match
// exactly, or ok=false. Failure is an expected outcome, not an error.
func (d *Directory) Authenticate(email, password string) (models.UserCredential, bool) {
	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return models.UserCredential{}, false
}
