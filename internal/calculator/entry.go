package calculator

import (
	"fmt"
	"strings"
)

// Member is a group member as seen by the balance calculator.
// TotalPaid and Balance are the baseline the ledger is applied on top of,
// normally zero.
type Member struct {
	ID        string
	Name      string
	TotalPaid int64
	Balance   int64
}

// Entry is a ledger entry with the minimal information needed for balance calculations.
type Entry struct {
	Amount       int64
	PaidBy       string   // member ID credited with the full amount
	SplitBetween []string // member IDs debited with an equal share each
}

// ValidationError describes a malformed ledger entry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid ledger entry: %s %s", e.Field, e.Reason)
}

// Validate rejects entries the calculator cannot process.
// Member references are not checked here: unknown IDs are skipped during
// calculation rather than rejected.
func (e Entry) Validate() error {
	if e.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(e.PaidBy) == "" {
		return &ValidationError{Field: "paid_by", Reason: "is required"}
	}
	if len(e.SplitBetween) == 0 {
		return &ValidationError{Field: "split_between", Reason: "must not be empty"}
	}
	seen := make(map[string]struct{}, len(e.SplitBetween))
	for _, id := range e.SplitBetween {
		if strings.TrimSpace(id) == "" {
			return &ValidationError{Field: "split_between", Reason: "contains an empty member"}
		}
		if _, dup := seen[id]; dup {
			return &ValidationError{Field: "split_between", Reason: fmt.Sprintf("lists %s more than once", id)}
		}
		seen[id] = struct{}{}
	}
	return nil
}
