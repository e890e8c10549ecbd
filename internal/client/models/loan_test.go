package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoan_Overdue(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		loan Loan
		want bool
	}{
		{name: "past due and unreturned", loan: Loan{DueDate: &past}, want: true},
		{name: "due in the future", loan: Loan{DueDate: &future}, want: false},
		{name: "no due date", loan: Loan{}, want: false},
		{name: "returned", loan: Loan{DueDate: &past, ReturnedAt: &now}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loan.Overdue(now))
		})
	}
}

func TestBook_Matches(t *testing.T) {
	b := Book{Title: "The Two Towers", Author: "J.R.R. Tolkien", Genre: "Fantasy"}

	assert.True(t, b.Matches("towers"))
	assert.True(t, b.Matches("TOLKIEN"))
	assert.True(t, b.Matches("fanta"))
	assert.True(t, b.Matches(""))
	assert.False(t, b.Matches("science"))
}
