package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// Books loads and lists the catalog. Books already on the reading list are
// marked so the user knows the add action would be refused.
func (a *App) Books(ctx context.Context) error {
	if !a.authorize(false) {
		return nil
	}

	if err := a.books.Load(ctx); err != nil {
		a.reportError(ctx, err)
		a.books.Dismiss()
		return err
	}
	// The cross-reference marker needs the reading-list mirror too.
	if err := a.reading.Load(ctx); err != nil {
		a.reportError(ctx, err)
		a.reading.Dismiss()
		return err
	}

	for _, b := range a.books.Books() {
		a.printBook(b)
	}
	return nil
}

// SearchBooks filters the already-loaded catalog locally. An empty query
// shows everything.
func (a *App) SearchBooks(ctx context.Context, query string) error {
	if !a.authorize(false) {
		return nil
	}

	if len(a.books.Books()) == 0 {
		if err := a.books.Load(ctx); err != nil {
			a.reportError(ctx, err)
			a.books.Dismiss()
			return err
		}
	}

	matches := a.books.Search(query)
	if len(matches) == 0 {
		printlnFn("No books match", fmt.Sprintf("%q", query))
		return nil
	}
	for _, b := range matches {
		a.printBook(b)
	}
	return nil
}

// Borrow creates a loan for a book. The loan shows up in the my-loans view
// only after the server confirms it.
func (a *App) Borrow(ctx context.Context, args []string) error {
	if !a.authorize(false) {
		return nil
	}

	id, err := GetID(a.reader, args, "Enter book id to borrow", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	loan, err := a.books.Borrow(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	if loan.DueDate != nil {
		printlnFn("Borrowed. Due", loan.DueDate.Format("2006-01-02"))
	} else {
		printlnFn("Borrowed.")
	}
	return nil
}

func (a *App) printBook(b models.Book) {
	marker := ""
	if a.books.InReadingList(b.ID) {
		marker = "  [on reading list]"
	}
	printlnFn(fmt.Sprintf("%4d  %s by %s (%s)%s", b.ID, b.Title, b.Author, b.Genre, marker))
}
