package services

import (
	"context"
	"sync"

	"github.com/jonmaccc4/BookNest-library/internal/client/api"
	"github.com/jonmaccc4/BookNest-library/internal/client/collection"
	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// BookService backs the catalog view: the books mirror, the client-side
// search filter, borrowing, and the reading-list cross-reference.
type BookService struct {
	client  api.Client
	books   *collection.Controller[models.Book]
	reading *ReadingListService

	mu        sync.Mutex
	borrowing map[int64]struct{}
}

// NewBookService binds the catalog to the API client and the reading-list
// service whose mirror provides the "already listed" cross-reference.
func NewBookService(client api.Client, reading *ReadingListService) *BookService {
	return &BookService{
		client:    client,
		books:     collection.New(func(b models.Book) int64 { return b.ID }),
		reading:   reading,
		borrowing: make(map[int64]struct{}),
	}
}

// Load replaces the mirror with the server's catalog.
func (s *BookService) Load(ctx context.Context) error {
	return s.books.Load(ctx, s.client.ListBooks)
}

func (s *BookService) Books() []models.Book {
	return s.books.Items()
}

func (s *BookService) State() collection.State {
	return s.books.State()
}

func (s *BookService) Dismiss() {
	s.books.Dismiss()
}

// Search filters the full local mirror with a case-insensitive substring
// match across title, author and genre. It never re-fetches.
func (s *BookService) Search(query string) []models.Book {
	return s.books.Filter(func(b models.Book) bool {
		return b.Matches(query)
	})
}

// InReadingList reports whether the book is already on the reading list,
// in which case the add action is disabled instead of allowing a duplicate.
func (s *BookService) InReadingList(bookID int64) bool {
	return s.reading.ContainsBook(bookID)
}

// AddToReadingList delegates to the reading-list service, refusing
// duplicates before any request goes out.
func (s *BookService) AddToReadingList(ctx context.Context, bookID int64, note string) (models.ReadingListEntry, error) {
	if s.InReadingList(bookID) {
		return models.ReadingListEntry{}, ErrAlreadyInReadingList
	}
	return s.reading.Add(ctx, bookID, note)
}

// Borrow creates a loan for the book. Only one borrow per book may be in
// flight; the catalog mirror itself is unaffected.
func (s *BookService) Borrow(ctx context.Context, bookID int64) (*models.Loan, error) {
	s.mu.Lock()
	if _, busy := s.borrowing[bookID]; busy {
		s.mu.Unlock()
		return nil, ErrBorrowInFlight
	}
	s.borrowing[bookID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.borrowing, bookID)
		s.mu.Unlock()
	}()

	return s.client.BorrowBook(ctx, bookID)
}
