package cli

import (
	"context"
	"fmt"
	"os"
)

// Loans loads and lists the current user's loans, flagging overdue ones.
func (a *App) Loans(ctx context.Context) error {
	if !a.authorize(false) {
		return nil
	}

	if err := a.loans.Load(ctx); err != nil {
		a.reportError(ctx, err)
		a.loans.Dismiss()
		return err
	}

	loans := a.loans.Loans()
	if len(loans) == 0 {
		printlnFn("No loans.")
		return nil
	}

	for _, l := range loans {
		status := "borrowed"
		switch {
		case l.Returned():
			status = "returned " + l.ReturnedAt.Format("2006-01-02")
		case a.loans.Overdue(l):
			status = "OVERDUE"
		case l.DueDate != nil:
			status = "due " + l.DueDate.Format("2006-01-02")
		}
		printlnFn(fmt.Sprintf("%4d  %s by %s [%s]", l.ID, l.Book.Title, l.Book.Author, status))
	}
	return nil
}

// ReturnLoan marks a loan as returned. The mirror updates only after the
// server confirms.
func (a *App) ReturnLoan(ctx context.Context, args []string) error {
	if !a.authorize(false) {
		return nil
	}

	id, err := GetID(a.reader, args, "Enter loan id to return", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.loans.Return(ctx, id); err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Returned.")
	return nil
}
