package services

import (
	"context"

	"github.com/jonmaccc4/BookNest-library/internal/client/api"
	"github.com/jonmaccc4/BookNest-library/internal/client/collection"
	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// ReadingListService backs the personal reading-list view.
type ReadingListService struct {
	client  api.Client
	entries *collection.Controller[models.ReadingListEntry]
}

func NewReadingListService(client api.Client) *ReadingListService {
	return &ReadingListService{
		client:  client,
		entries: collection.New(func(e models.ReadingListEntry) int64 { return e.ID }),
	}
}

// Load replaces the mirror with the server's reading list.
func (s *ReadingListService) Load(ctx context.Context) error {
	return s.entries.Load(ctx, s.client.ReadingList)
}

func (s *ReadingListService) Entries() []models.ReadingListEntry {
	return s.entries.Items()
}

func (s *ReadingListService) State() collection.State {
	return s.entries.State()
}

func (s *ReadingListService) Dismiss() {
	s.entries.Dismiss()
}

// ContainsBook reports whether the given catalog book is already listed.
// The books view uses this to disable the add action.
func (s *ReadingListService) ContainsBook(bookID int64) bool {
	return len(s.entries.Filter(func(e models.ReadingListEntry) bool {
		return e.BookID == bookID
	})) > 0
}

// Add appends a book once the server confirms it with an entry id.
func (s *ReadingListService) Add(ctx context.Context, bookID int64, note string) (models.ReadingListEntry, error) {
	return s.entries.Create(ctx, func(ctx context.Context) (models.ReadingListEntry, error) {
		entry, err := s.client.AddToReadingList(ctx, bookID, note)
		if err != nil {
			return models.ReadingListEntry{}, err
		}
		return *entry, nil
	})
}

// EditNote patches the note of one entry, splicing it in only on success.
func (s *ReadingListService) EditNote(ctx context.Context, id int64, note string) error {
	return s.entries.Update(ctx, id,
		func(ctx context.Context) error {
			return s.client.UpdateReadingNote(ctx, id, note)
		},
		func(e models.ReadingListEntry) models.ReadingListEntry {
			e.Note = note
			return e
		},
	)
}

// Remove deletes one entry after confirmation. A declined confirmation
// issues no request.
func (s *ReadingListService) Remove(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	return s.entries.Delete(ctx, id, confirm, func(ctx context.Context) error {
		return s.client.RemoveFromReadingList(ctx, id)
	})
}
