// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of transaction dates.
const DateLayout = "2006-01-02"

// Transaction represents a dated ledger entry. Transactions are append-only.
type Transaction struct {
	ID          uint
	Date        time.Time
	Amount      decimal.Decimal // Sign is not interpreted; the category kind decides the bucket
	Description string
	CategoryID  uint
	SectionID   uint
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
// The date is truncated to a UTC calendar day so range filters compare whole days.
func NewTransaction(
	date time.Time,
	amount decimal.Decimal,
	description string,
	categoryID uint,
	sectionID uint,
) *Transaction {
	return &Transaction{
		Date:        CalendarDay(date),
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		SectionID:   sectionID,
		CreatedAt:   time.Now().UTC(),
	}
}

// TransactionDetail is a transaction joined with the names of its category and section.
type TransactionDetail struct {
	Transaction  *Transaction
	CategoryName string
	CategoryKind CategoryKind
	SectionName  string
}

// CalendarDay returns midnight UTC of the calendar day of t.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
