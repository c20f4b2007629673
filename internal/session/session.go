// Package session keeps short-lived, per-visitor notifications between requests.
package session

import "context"

// Notification keys used by the submission flow
const (
	KeyInfoErrors = "infoErrors"
	KeyInfoSubmit = "infoSubmit"
)

// Store holds notification values per session id and key
type Store interface {
	// Set replaces any pending values for key with value
	Set(ctx context.Context, sid, key, value string) error
	// TakeAll returns the pending values for key and clears them
	TakeAll(ctx context.Context, sid, key string) ([]string, error)
}

// Session binds a Store to one session id
type Session struct {
	store Store
	id    string
}

// New returns the session identified by id
func New(store Store, id string) *Session {
	return &Session{store: store, id: id}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

func (s *Session) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.id, key, value)
}

func (s *Session) TakeAll(ctx context.Context, key string) ([]string, error) {
	return s.store.TakeAll(ctx, s.id, key)
}
