package models

import "time"

// Loan is one borrowing record of the current user.
type Loan struct {
	ID         int64       `json:"id"`
	BookID     int64       `json:"book_id"`
	BorrowedAt time.Time   `json:"borrowed_at"`
	DueDate    *time.Time  `json:"due_date,omitempty"`
	ReturnedAt *time.Time  `json:"returned_at,omitempty"`
	Book       BookSummary `json:"book"`
}

// Overdue reports whether the loan is past due at the given instant:
// not yet returned, has a due date, and now is after it.
func (l Loan) Overdue(now time.Time) bool {
	return l.ReturnedAt == nil && l.DueDate != nil && now.After(*l.DueDate)
}

// Returned reports whether the book has been handed back.
func (l Loan) Returned() bool {
	return l.ReturnedAt != nil
}

// AdminLoan is the flattened loan row of the admin back-office listing.
type AdminLoan struct {
	ID         int64      `json:"id"`
	UserEmail  string     `json:"user_email"`
	BookTitle  string     `json:"book_title"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}
