package services

import (
	"context"

	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Configure the *Ret/*Err
// fields per test; Last* fields record the most recent call arguments.
type fakeClient struct {
	LoginRet *models.Credentials
	LoginErr error

	RegisterErr      error
	UpdateProfileErr error

	ListBooksRet []models.Book
	ListBooksErr error

	MyLoansRet []models.Loan
	MyLoansErr error

	BorrowRet *models.Loan
	BorrowErr error

	ReturnLoanErr error

	ReadingListRet []models.ReadingListEntry
	ReadingListErr error

	AddToReadingListRet  *models.ReadingListEntry
	AddToReadingListErr  error
	UpdateReadingNoteErr error
	RemoveFromListErr    error

	AdminUsersRet      []models.AdminUser
	AdminUsersErr      error
	AdminCreateUserRet *models.AdminUser
	AdminCreateUserErr error
	AdminUpdateUserErr error
	AdminDeleteUserErr error

	AdminBooksRet      []models.Book
	AdminBooksErr      error
	AdminCreateBookRet *models.Book
	AdminCreateBookErr error
	AdminUpdateBookErr error
	AdminDeleteBookErr error

	AdminLoansRet      []models.AdminLoan
	AdminLoansErr      error
	AdminDeleteLoanErr error

	LastLoginEmail string
	LastBorrowBook int64
	LastAddBookID  int64
	LastAddNote    string
	LastNoteID     int64
	LastNote       string
	LastDeletedID  int64
	BorrowCalls    int
	AddCalls       int
	DeleteCalls    int
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Credentials, error) {
	f.LastLoginEmail = email
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) error {
	return f.RegisterErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	return f.UpdateProfileErr
}

func (f *fakeClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	return f.ListBooksRet, f.ListBooksErr
}

func (f *fakeClient) MyLoans(ctx context.Context) ([]models.Loan, error) {
	return f.MyLoansRet, f.MyLoansErr
}

func (f *fakeClient) BorrowBook(ctx context.Context, bookID int64) (*models.Loan, error) {
	f.LastBorrowBook = bookID
	f.BorrowCalls++
	return f.BorrowRet, f.BorrowErr
}

func (f *fakeClient) ReturnLoan(ctx context.Context, id int64) error {
	return f.ReturnLoanErr
}

func (f *fakeClient) ReadingList(ctx context.Context) ([]models.ReadingListEntry, error) {
	return f.ReadingListRet, f.ReadingListErr
}

func (f *fakeClient) AddToReadingList(ctx context.Context, bookID int64, note string) (*models.ReadingListEntry, error) {
	f.LastAddBookID = bookID
	f.LastAddNote = note
	f.AddCalls++
	return f.AddToReadingListRet, f.AddToReadingListErr
}

func (f *fakeClient) UpdateReadingNote(ctx context.Context, id int64, note string) error {
	f.LastNoteID = id
	f.LastNote = note
	return f.UpdateReadingNoteErr
}

func (f *fakeClient) RemoveFromReadingList(ctx context.Context, id int64) error {
	f.LastDeletedID = id
	f.DeleteCalls++
	return f.RemoveFromListErr
}

func (f *fakeClient) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	return f.AdminUsersRet, f.AdminUsersErr
}

func (f *fakeClient) AdminCreateUser(ctx context.Context, in models.AdminUserInput) (*models.AdminUser, error) {
	return f.AdminCreateUserRet, f.AdminCreateUserErr
}

func (f *fakeClient) AdminUpdateUser(ctx context.Context, id int64, in models.AdminUserUpdate) error {
	return f.AdminUpdateUserErr
}

func (f *fakeClient) AdminDeleteUser(ctx context.Context, id int64) error {
	f.LastDeletedID = id
	f.DeleteCalls++
	return f.AdminDeleteUserErr
}

func (f *fakeClient) AdminBooks(ctx context.Context) ([]models.Book, error) {
	return f.AdminBooksRet, f.AdminBooksErr
}

func (f *fakeClient) AdminCreateBook(ctx context.Context, in models.BookInput) (*models.Book, error) {
	return f.AdminCreateBookRet, f.AdminCreateBookErr
}

func (f *fakeClient) AdminUpdateBook(ctx context.Context, id int64, in models.BookInput) error {
	return f.AdminUpdateBookErr
}

func (f *fakeClient) AdminDeleteBook(ctx context.Context, id int64) error {
	f.LastDeletedID = id
	f.DeleteCalls++
	return f.AdminDeleteBookErr
}

func (f *fakeClient) AdminLoans(ctx context.Context) ([]models.AdminLoan, error) {
	return f.AdminLoansRet, f.AdminLoansErr
}

func (f *fakeClient) AdminDeleteLoan(ctx context.Context, id int64) error {
	f.LastDeletedID = id
	f.DeleteCalls++
	return f.AdminDeleteLoanErr
}
