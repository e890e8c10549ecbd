package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/jonmaccc4/BookNest-library/internal/client/repositories/localstate"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE local_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func persistedTriple(t *testing.T, db *sql.DB) (token, username, isAdmin string, present int) {
	t.Helper()
	ctx := context.Background()
	repo := localstate.NewSQLiteRepository(db)

	var ok bool
	var err error
	if token, ok, err = repo.Get(ctx, "token"); err != nil {
		t.Fatal(err)
	} else if ok {
		present++
	}
	if username, ok, err = repo.Get(ctx, "username"); err != nil {
		t.Fatal(err)
	} else if ok {
		present++
	}
	if isAdmin, ok, err = repo.Get(ctx, "is_admin"); err != nil {
		t.Fatal(err)
	} else if ok {
		present++
	}
	return token, username, isAdmin, present
}

func TestStore_LoginPersistsAllFields(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "tok-1", "ann", true))

	token, username, isAdmin, present := persistedTriple(t, db)
	assert.Equal(t, 3, present)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "ann", username)
	assert.Equal(t, "true", isAdmin)

	cur := store.Current()
	assert.True(t, cur.LoggedIn())
	assert.Equal(t, "ann", cur.Username)
	assert.True(t, cur.IsAdmin)
}

func TestStore_LogoutClearsEverything(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "tok-1", "ann", false))
	require.NoError(t, store.Logout(ctx))

	_, _, _, present := persistedTriple(t, db)
	assert.Zero(t, present)
	assert.False(t, store.Current().LoggedIn())
}

func TestStore_RestoreSeesLastLogin(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, NewStore(db).Login(ctx, "tok-2", "bob", false))

	// Fresh store over the same database simulates a process restart.
	restored := NewStore(db)
	require.NoError(t, restored.Restore(ctx))

	cur := restored.Current()
	assert.Equal(t, "tok-2", cur.Token)
	assert.Equal(t, "bob", cur.Username)
	assert.False(t, cur.IsAdmin)
}

func TestStore_RestoreEmptyDatabase(t *testing.T) {
	store := NewStore(setupDB(t))
	require.NoError(t, store.Restore(context.Background()))
	assert.False(t, store.Current().LoggedIn())
}

func TestStore_RestoreRunsOnce(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()

	require.NoError(t, store.Restore(ctx))
	require.NoError(t, store.Login(ctx, "tok", "ann", false))

	// A later Restore must not clobber the in-memory session.
	require.NoError(t, store.Restore(ctx))
	assert.True(t, store.Current().LoggedIn())
}

func TestStore_PersistedEqualsInMemoryAfterEachOp(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()

	ops := []func() error{
		func() error { return store.Login(ctx, "a", "u1", false) },
		func() error { return store.Login(ctx, "b", "u2", true) },
		func() error { return store.Logout(ctx) },
		func() error { return store.Login(ctx, "c", "u3", false) },
	}

	for i, op := range ops {
		require.NoError(t, op())

		restored := NewStore(db)
		require.NoError(t, restored.Restore(ctx))
		assert.Equal(t, store.Current(), restored.Current(), "op %d", i)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStore_TokenExpired(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("no token", func(t *testing.T) {
		assert.False(t, store.TokenExpired(now))
	})

	t.Run("live token", func(t *testing.T) {
		require.NoError(t, store.Login(ctx, signedToken(t, now.Add(time.Hour)), "ann", false))
		assert.False(t, store.TokenExpired(now))
	})

	t.Run("expired token", func(t *testing.T) {
		require.NoError(t, store.Login(ctx, signedToken(t, now.Add(-time.Hour)), "ann", false))
		assert.True(t, store.TokenExpired(now))
	})

	t.Run("opaque token", func(t *testing.T) {
		require.NoError(t, store.Login(ctx, "not-a-jwt", "ann", false))
		assert.False(t, store.TokenExpired(now))
	})
}
