// Package session holds the signed-in identity on top of the API client.
// Each Store is constructed explicitly; nothing here is process-global.
package session

import (
	"context"
	"errors"
	"sync"

	"creatortrust/internal/domain"
	"creatortrust/pkg/client"
)

type Store struct {
	client *client.Client

	mu       sync.RWMutex
	identity *client.Identity
}

func New(c *client.Client) *Store {
	return &Store{client: c}
}

// Bootstrap restores the session at startup. Without a persisted token it
// finishes unauthenticated and touches the network zero times. With one it
// refreshes the identity; a rejected token is cleared and the store ends
// unauthenticated without error. Transport failures propagate.
func (s *Store) Bootstrap(ctx context.Context) error {
	if s.client.Token() == "" {
		return nil
	}

	if err := s.RefreshUser(ctx); err != nil {
		var reqErr *client.RequestError
		if errors.As(err, &reqErr) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	if _, err := s.client.Login(ctx, email, password); err != nil {
		return err
	}
	return s.RefreshUser(ctx)
}

func (s *Store) Register(ctx context.Context, in client.RegisterInput) error {
	if _, err := s.client.Register(ctx, in); err != nil {
		return err
	}
	return s.RefreshUser(ctx)
}

// Logout drops the token and identity. No network call; calling it while
// already signed out is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
	return s.client.ClearToken()
}

// RefreshUser re-resolves /auth/me. Any failure leaves the store signed out:
// the token and identity are cleared before the error is returned.
func (s *Store) RefreshUser(ctx context.Context) error {
	id, err := s.client.Me(ctx)
	if err != nil {
		s.mu.Lock()
		s.identity = nil
		s.mu.Unlock()
		_ = s.client.ClearToken()
		return err
	}

	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
	return nil
}

func (s *Store) Current() *client.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *Store) Authenticated() bool {
	return s.Current() != nil
}

// Role returns the signed-in user's role, or the empty value when signed
// out.
func (s *Store) Role() domain.Role {
	id := s.Current()
	if id == nil {
		return ""
	}
	return domain.Role(id.User.UserType)
}

func (s *Store) Client() *client.Client {
	return s.client
}
