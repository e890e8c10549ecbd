// Package api talks to the BookNest REST backend. It owns credential
// attachment and the uniform response policy; it never owns session state.
package api

import (
	"context"

	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// TokenSource supplies the current bearer token, or "" when logged out.
// Keeping the token behind a func means the client always sees the live
// session value without holding a reference to the session store.
type TokenSource func() string

// Client is the surface of the BookNest backend used by the views.
//
// Error contract, uniform across all methods:
//   - HTTP 401/403       -> ErrUnauthorized
//   - other non-2xx      -> *Error with the server message
//   - transport failure  -> ErrUnavailable (wrapped)
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.Credentials, error)
	Register(ctx context.Context, username, email, password string) error
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error

	// Books.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// Loans.
	MyLoans(ctx context.Context) ([]models.Loan, error)
	BorrowBook(ctx context.Context, bookID int64) (*models.Loan, error)
	ReturnLoan(ctx context.Context, id int64) error

	// Reading list.
	ReadingList(ctx context.Context) ([]models.ReadingListEntry, error)
	AddToReadingList(ctx context.Context, bookID int64, note string) (*models.ReadingListEntry, error)
	UpdateReadingNote(ctx context.Context, id int64, note string) error
	RemoveFromReadingList(ctx context.Context, id int64) error

	// Admin back-office.
	AdminUsers(ctx context.Context) ([]models.AdminUser, error)
	AdminCreateUser(ctx context.Context, in models.AdminUserInput) (*models.AdminUser, error)
	AdminUpdateUser(ctx context.Context, id int64, in models.AdminUserUpdate) error
	AdminDeleteUser(ctx context.Context, id int64) error

	AdminBooks(ctx context.Context) ([]models.Book, error)
	AdminCreateBook(ctx context.Context, in models.BookInput) (*models.Book, error)
	AdminUpdateBook(ctx context.Context, id int64, in models.BookInput) error
	AdminDeleteBook(ctx context.Context, id int64) error

	AdminLoans(ctx context.Context) ([]models.AdminLoan, error)
	AdminDeleteLoan(ctx context.Context, id int64) error
}
