// Package session owns the client's authenticated identity: restoring it at
// startup, replacing it on login, clearing it on logout or auth failure, and
// persisting it durably so the session survives restarts.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonmaccc4/BookNest-library/internal/client/models"
	"github.com/jonmaccc4/BookNest-library/internal/client/repositories/localstate"
	"github.com/jonmaccc4/BookNest-library/internal/dbx"
)

// Persisted keys. The three are always written and cleared together; a
// restore never observes a partial triple.
const (
	keyToken    = "token"
	keyUsername = "username"
	keyIsAdmin  = "is_admin"
)

// Store holds the current session in memory and mirrors it into the local
// state database. The REPL is single-threaded, but the store is safe for
// concurrent readers anyway.
type Store struct {
	db *sql.DB

	mu       sync.RWMutex
	cur      models.Session
	restored bool
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Restore loads the persisted session, if any. Missing or malformed values
// yield an empty session. It runs at most once per process; later calls are
// no-ops.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return nil
	}
	s.restored = true

	repo := localstate.NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok || token == "" {
		return nil
	}

	username, _, err := repo.Get(ctx, keyUsername)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	isAdmin, _, err := repo.Get(ctx, keyIsAdmin)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.cur = models.Session{Token: token, Username: username, IsAdmin: isAdmin == "true"}
	return nil
}

// Login replaces the session wholesale and persists all three fields in a
// single transaction, so a concurrent restore can never observe a partial
// write.
func (s *Store) Login(ctx context.Context, token, username string, isAdmin bool) error {
	flag := "false"
	if isAdmin {
		flag = "true"
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstate.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, token); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyUsername, username); err != nil {
			return err
		}
		return repo.Set(ctx, keyIsAdmin, flag)
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.cur = models.Session{Token: token, Username: username, IsAdmin: isAdmin}
	s.mu.Unlock()
	return nil
}

// Logout clears the session wholesale, removing all persisted fields in a
// single transaction. Also the reaction to any authorization failure.
func (s *Store) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstate.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyToken); err != nil {
			return err
		}
		if err := repo.Delete(ctx, keyUsername); err != nil {
			return err
		}
		return repo.Delete(ctx, keyIsAdmin)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.cur = models.Session{}
	s.mu.Unlock()
	return nil
}

// Current returns a snapshot of the session. Callers re-read it whenever
// they need a fresh view; nothing is cached across navigations.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token is an api.TokenSource-compatible accessor.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

// TokenExpired inspects the stored JWT's exp claim without verifying the
// signature. Opaque or claim-less tokens count as not expired; the server
// stays the authority either way.
func (s *Store) TokenExpired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
