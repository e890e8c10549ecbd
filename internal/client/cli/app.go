package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jonmaccc4/BookNest-library/internal/client/api"
	"github.com/jonmaccc4/BookNest-library/internal/client/config"
	"github.com/jonmaccc4/BookNest-library/internal/client/repositories/localstate"
	"github.com/jonmaccc4/BookNest-library/internal/client/services"
	"github.com/jonmaccc4/BookNest-library/internal/client/session"
	"github.com/jonmaccc4/BookNest-library/internal/logging"
)

// localStateFile is the SQLite database holding the persisted session.
const localStateFile = "booknest.db"

// App wires the configuration, session store, API client and view services
// behind the interactive REPL.
type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	sessions *session.Store
	auth     services.AuthService
	books    *services.BookService
	loans    *services.LoanService
	reading  *services.ReadingListService
	admin    *services.AdminService
	reader   *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localstate.Open(ctx, localStateFile)
	if err != nil {
		logger.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	sessions := session.NewStore(db)
	if err := sessions.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	// A restored token that is already past its exp claim is dropped up
	// front rather than waiting for the first rejected request.
	if sessions.TokenExpired(time.Now()) {
		logger.Info(ctx, "stored session expired, clearing")
		if err := sessions.Logout(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, sessions.Token)

	reading := services.NewReadingListService(apiClient)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		sessions: sessions,
		auth:     services.NewAuthService(apiClient, sessions),
		books:    services.NewBookService(apiClient, reading),
		loans:    services.NewLoanService(apiClient),
		reading:  reading,
		admin:    services.NewAdminService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	scanner := bufio.NewScanner(os.Stdin)

	printlnFn("Welcome to BookNest (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	s := a.sessions.Current()
	if !s.LoggedIn() {
		return ""
	}
	if s.IsAdmin {
		return fmt.Sprintf("(%s admin)", s.Username)
	}
	return fmt.Sprintf("(%s)", s.Username)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().LoggedIn()
}

func (a *App) isAdmin() bool {
	return a.sessions.Current().IsAdmin
}

// authorize runs the access check for a protected view and reports the
// redirect to the user when access is denied.
func (a *App) authorize(requireAdmin bool) bool {
	switch Authorize(a.sessions.Current(), requireAdmin) {
	case DecisionAllow:
		return true
	case DecisionRedirectLogin:
		printlnFn("Please log in first.")
		return false
	default:
		printlnFn("Admins only.")
		return false
	}
}

// reportError turns a failed API call into user-facing output. An
// authorization failure additionally clears the session, so the next command
// lands on the login redirect.
func (a *App) reportError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		if lerr := a.sessions.Logout(ctx); lerr != nil {
			a.logger.Error(ctx, "clearing session", "error", lerr)
		}
		printlnFn("Your session has expired. Please log in again.")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Server unavailable. Please try again later.")
	default:
		printlnFn("Error:", err.Error())
	}
}
