package cli

import (
	"context"
	"fmt"
	"os"
)

// ReadingList loads and lists the personal reading list.
func (a *App) ReadingList(ctx context.Context) error {
	if !a.authorize(false) {
		return nil
	}

	if err := a.reading.Load(ctx); err != nil {
		a.reportError(ctx, err)
		a.reading.Dismiss()
		return err
	}

	entries := a.reading.Entries()
	if len(entries) == 0 {
		printlnFn("Reading list is empty.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%4d  %s by %s", e.ID, e.Book.Title, e.Book.Author)
		if e.Note != "" {
			line += fmt.Sprintf("  (note: %s)", e.Note)
		}
		printlnFn(line)
	}
	return nil
}

// AddNote adds a catalog book to the reading list with an optional note.
// A book already on the list is refused before any request goes out.
func (a *App) AddNote(ctx context.Context, args []string) error {
	if !a.authorize(false) {
		return nil
	}

	bookID, err := GetID(a.reader, args, "Enter book id to add", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.books.AddToReadingList(ctx, bookID, note)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Added to reading list as entry", entry.ID)
	return nil
}

// EditNote replaces the note of one reading-list entry.
func (a *App) EditNote(ctx context.Context, args []string) error {
	if !a.authorize(false) {
		return nil
	}

	id, err := GetID(a.reader, args, "Enter entry id to edit", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	note, err := getSimpleText(a.reader, "New note", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.reading.EditNote(ctx, id, note); err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Note updated.")
	return nil
}

// RemoveEntry removes one reading-list entry after confirmation. Declining
// issues no request.
func (a *App) RemoveEntry(ctx context.Context, args []string) error {
	if !a.authorize(false) {
		return nil
	}

	id, err := GetID(a.reader, args, "Enter entry id to remove", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	removed, err := a.reading.Remove(ctx, id, func() bool {
		return GetConfirmation(a.reader, "Remove this entry?", os.Stdout)
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if !removed {
		printlnFn("Kept.")
		return nil
	}

	printlnFn("Removed.")
	return nil
}
