package models

// EntryKind distinguishes shared expenses from payments between members.
type EntryKind string

const (
	EntryKindExpense EntryKind = "Expense"
	EntryKindPayment EntryKind = "Payment"
)

// LedgerEntry is one expense or payment affecting a group's balances.
// Entries are immutable once recorded; they are only ever deleted.
type LedgerEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string

	// GroupID is the group this entry belongs to.
	GroupID string

	Title string

	// Amount is a positive number of whole currency units.
	Amount int64

	// PaidBy is the member ID of whoever fronted the money.
	PaidBy string

	// SplitBetween is the ordered list of member IDs sharing the amount.
	// For a point-to-point payment it holds only the receiver.
	SplitBetween []string

	Kind EntryKind

	// Date is the calendar date (YYYY-MM-DD) the entry applies to.
	Date string

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64
}
