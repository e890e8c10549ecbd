package services

import (
	"context"
	"time"

	"github.com/jonmaccc4/BookNest-library/internal/client/api"
	"github.com/jonmaccc4/BookNest-library/internal/client/collection"
	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// LoanService backs the my-loans view.
type LoanService struct {
	client api.Client
	loans  *collection.Controller[models.Loan]
	now    func() time.Time
}

func NewLoanService(client api.Client) *LoanService {
	return &LoanService{
		client: client,
		loans:  collection.New(func(l models.Loan) int64 { return l.ID }),
		now:    time.Now,
	}
}

// Load replaces the mirror with the user's loans.
func (s *LoanService) Load(ctx context.Context) error {
	return s.loans.Load(ctx, s.client.MyLoans)
}

func (s *LoanService) Loans() []models.Loan {
	return s.loans.Items()
}

func (s *LoanService) State() collection.State {
	return s.loans.State()
}

func (s *LoanService) Dismiss() {
	s.loans.Dismiss()
}

// Return marks the loan returned. The return timestamp is spliced into the
// mirror only after the server confirms.
func (s *LoanService) Return(ctx context.Context, id int64) error {
	return s.loans.Update(ctx, id,
		func(ctx context.Context) error {
			return s.client.ReturnLoan(ctx, id)
		},
		func(l models.Loan) models.Loan {
			t := s.now().UTC()
			l.ReturnedAt = &t
			return l
		},
	)
}

// Overdue reports whether the loan is past due right now.
func (s *LoanService) Overdue(l models.Loan) bool {
	return l.Overdue(s.now())
}
