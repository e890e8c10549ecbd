package models

import "strings"

// Book is a server-owned catalog entry. The client never mutates one
// without a round trip.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// Matches reports whether the book matches a case-insensitive substring
// query across title, author and genre. An empty query matches everything.
func (b Book) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Genre), q)
}

// BookInput carries the fields of a book create or update request.
type BookInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// BookSummary is the embedded book object returned inside loans and
// reading-list entries.
type BookSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}
