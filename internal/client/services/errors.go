package services

import "errors"

// ErrAlreadyInReadingList rejects a duplicate add before any request is
// sent; the books view shows a disabled action for such books.
var ErrAlreadyInReadingList = errors.New("book already in reading list")

// ErrBorrowInFlight rejects a duplicate borrow of the same book while the
// first request is still outstanding.
var ErrBorrowInFlight = errors.New("borrow already in progress for this book")
