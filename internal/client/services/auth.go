// Package services contains the application services behind each BookNest
// view: authentication, the book catalog, personal loans, the reading list,
// and the admin back-office. Services translate view intents into API calls
// and keep the per-view collection mirrors reconciled.
package services

import (
	"context"
	"fmt"

	"github.com/jonmaccc4/BookNest-library/internal/client/api"
	"github.com/jonmaccc4/BookNest-library/internal/client/models"
	"github.com/jonmaccc4/BookNest-library/internal/client/session"
)

// AuthService handles login, registration, logout and profile updates.
//
// Contract:
//   - Login: authenticate and persist the session triple atomically.
//   - Register: create a new account; does not log in.
//   - Logout: clear the in-memory and persisted session.
//   - UpdateProfile: patch email and/or password of the current user.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error
}

type authService struct {
	client   api.Client
	sessions *session.Store
}

// NewAuthService binds the auth flows to the API client and session store.
func NewAuthService(client api.Client, sessions *session.Store) AuthService {
	return &authService{client: client, sessions: sessions}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	creds, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.sessions.Login(ctx, creds.Token, creds.Username, creds.IsAdmin); err != nil {
		return err
	}
	return nil
}

func (a *authService) Register(ctx context.Context, username, email, password string) error {
	if err := a.client.Register(ctx, username, email, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	if upd.Email == "" && upd.Password == "" {
		return fmt.Errorf("nothing to update")
	}
	if err := a.client.UpdateProfile(ctx, upd); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
