package models

// ReadingListEntry is one row of the personal reading list.
type ReadingListEntry struct {
	ID     int64       `json:"id"`
	BookID int64       `json:"book_id"`
	Note   string      `json:"note"`
	Book   BookSummary `json:"book"`
}
