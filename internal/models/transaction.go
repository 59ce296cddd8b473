package models

// TransactionType classifies a personal transaction.
type TransactionType string

const (
	TransactionIncome   TransactionType = "Income"
	TransactionExpenses TransactionType = "Expenses"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpenses
}

// Transaction is a personal income or expense record owned by one user.
type Transaction struct {
	ID     string
	UserID string
	Title  string

	// Amount is a positive number of whole currency units.
	Amount int64
	Type   TransactionType

	// Date is the calendar date (YYYY-MM-DD).
	Date string
}

// Summary totals a set of transactions.
type Summary struct {
	Income   int64
	Expenses int64
}

// Balance is income minus expenses.
func (s Summary) Balance() int64 {
	return s.Income - s.Expenses
}

// Summarize adds up income and expenses.
func Summarize(txs []*Transaction) Summary {
	var sum Summary
	for _, t := range txs {
		switch t.Type {
		case TransactionIncome:
			sum.Income += t.Amount
		case TransactionExpenses:
			sum.Expenses += t.Amount
		}
	}
	return sum
}
