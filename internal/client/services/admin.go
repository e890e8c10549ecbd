package services

import (
	"context"

	"github.com/jonmaccc4/BookNest-library/internal/client/api"
	"github.com/jonmaccc4/BookNest-library/internal/client/collection"
	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// AdminService backs the back-office view: users, the full catalog, and all
// loans. Every delete is confirmation-gated.
type AdminService struct {
	client api.Client
	users  *collection.Controller[models.AdminUser]
	books  *collection.Controller[models.Book]
	loans  *collection.Controller[models.AdminLoan]
}

func NewAdminService(client api.Client) *AdminService {
	return &AdminService{
		client: client,
		users:  collection.New(func(u models.AdminUser) int64 { return u.ID }),
		books:  collection.New(func(b models.Book) int64 { return b.ID }),
		loans:  collection.New(func(l models.AdminLoan) int64 { return l.ID }),
	}
}

// Users.

func (s *AdminService) LoadUsers(ctx context.Context) error {
	return s.users.Load(ctx, s.client.AdminUsers)
}

func (s *AdminService) Users() []models.AdminUser {
	return s.users.Items()
}

func (s *AdminService) CreateUser(ctx context.Context, in models.AdminUserInput) (models.AdminUser, error) {
	return s.users.Create(ctx, func(ctx context.Context) (models.AdminUser, error) {
		user, err := s.client.AdminCreateUser(ctx, in)
		if err != nil {
			return models.AdminUser{}, err
		}
		return *user, nil
	})
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, in models.AdminUserUpdate) error {
	return s.users.Update(ctx, id,
		func(ctx context.Context) error {
			return s.client.AdminUpdateUser(ctx, id, in)
		},
		func(u models.AdminUser) models.AdminUser {
			u.Username = in.Username
			u.Email = in.Email
			u.IsAdmin = in.IsAdmin
			return u
		},
	)
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return s.users.Delete(ctx, id, confirm, func(ctx context.Context) error {
		return s.client.AdminDeleteUser(ctx, id)
	})
}

// Books.

func (s *AdminService) LoadBooks(ctx context.Context) error {
	return s.books.Load(ctx, s.client.AdminBooks)
}

func (s *AdminService) Books() []models.Book {
	return s.books.Items()
}

func (s *AdminService) CreateBook(ctx context.Context, in models.BookInput) (models.Book, error) {
	return s.books.Create(ctx, func(ctx context.Context) (models.Book, error) {
		book, err := s.client.AdminCreateBook(ctx, in)
		if err != nil {
			return models.Book{}, err
		}
		return *book, nil
	})
}

func (s *AdminService) UpdateBook(ctx context.Context, id int64, in models.BookInput) error {
	return s.books.Update(ctx, id,
		func(ctx context.Context) error {
			return s.client.AdminUpdateBook(ctx, id, in)
		},
		func(b models.Book) models.Book {
			b.Title = in.Title
			b.Author = in.Author
			b.Genre = in.Genre
			return b
		},
	)
}

func (s *AdminService) DeleteBook(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return s.books.Delete(ctx, id, confirm, func(ctx context.Context) error {
		return s.client.AdminDeleteBook(ctx, id)
	})
}

// Loans.

func (s *AdminService) LoadLoans(ctx context.Context) error {
	return s.loans.Load(ctx, s.client.AdminLoans)
}

func (s *AdminService) Loans() []models.AdminLoan {
	return s.loans.Items()
}

func (s *AdminService) DeleteLoan(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return s.loans.Delete(ctx, id, confirm, func(ctx context.Context) error {
		return s.client.AdminDeleteLoan(ctx, id)
	})
}
