package cli

import (
	"context"
	"os"

	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates a new
// account. Registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, username, email, password); err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Account created. You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// triple is already persisted, so it survives a restart.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Logged in as", a.sessions.Current().Username)
	return nil
}

// Logout clears the in-memory and persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI shows the current session snapshot.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.Current()
	if !s.LoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	role := "member"
	if s.IsAdmin {
		role = "admin"
	}
	printlnFn("Logged in as", s.Username, "("+role+")")
	return nil
}

// Profile updates the current user's email and/or password. Empty answers
// leave the corresponding field unchanged; answering nothing at all is
// rejected before any request goes out.
func (a *App) Profile(ctx context.Context) error {
	if !a.authorize(false) {
		return nil
	}

	email, err := getSimpleText(a.reader, "New email (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "New password (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.UpdateProfile(ctx, models.ProfileUpdate{Email: email, Password: password}); err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Profile updated.")
	return nil
}
