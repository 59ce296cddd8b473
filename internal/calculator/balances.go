package calculator

import (
	"github.com/shopspring/decimal"
)

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	MemberID  string
	Name      string
	TotalPaid int64           // Total amount fronted across all entries
	Balance   decimal.Decimal // Positive = owed money, Negative = owes money
}

// Balances is the per-member result of ComputeBalances, kept in member order.
type Balances struct {
	order []string
	byID  map[string]MemberBalance
}

// Get returns the balance of one member.
func (b Balances) Get(memberID string) (MemberBalance, bool) {
	mb, ok := b.byID[memberID]
	return mb, ok
}

// List returns all balances in the order members were supplied.
func (b Balances) List() []MemberBalance {
	out := make([]MemberBalance, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byID[id])
	}
	return out
}

// Len returns the number of members with a balance.
func (b Balances) Len() int {
	return len(b.order)
}

// Sum returns the total of all balances. It is zero whenever every entry
// references only known members.
func (b Balances) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, mb := range b.byID {
		sum = sum.Add(mb.Balance)
	}
	return sum
}

// ComputeBalances derives each member's net position from a group's ledger.
//
// Algorithm:
// - Start every member from their baseline TotalPaid and Balance
// - For each entry: payer is credited the full amount, each split member is
//   debited amount / len(SplitBetween)
// - Member IDs that are not in members are skipped, no balance is created for them
//
// Decimal addition is exact, so the result does not depend on entry order.
// Entries are expected to be validated; one with an empty split is ignored.
func ComputeBalances(members []Member, entries []Entry) Balances {
	b := Balances{
		order: make([]string, 0, len(members)),
		byID:  make(map[string]MemberBalance, len(members)),
	}
	for _, m := range members {
		if _, dup := b.byID[m.ID]; dup {
			continue
		}
		b.order = append(b.order, m.ID)
		b.byID[m.ID] = MemberBalance{
			MemberID:  m.ID,
			Name:      m.Name,
			TotalPaid: m.TotalPaid,
			Balance:   decimal.NewFromInt(m.Balance),
		}
	}

	for _, e := range entries {
		share, err := Share(e.Amount, len(e.SplitBetween))
		if err != nil {
			continue
		}

		if payer, ok := b.byID[e.PaidBy]; ok {
			payer.TotalPaid += e.Amount
			payer.Balance = payer.Balance.Add(decimal.NewFromInt(e.Amount))
			b.byID[e.PaidBy] = payer
		}

		for _, id := range e.SplitBetween {
			if mb, ok := b.byID[id]; ok {
				mb.Balance = mb.Balance.Sub(share)
				b.byID[id] = mb
			}
		}
	}

	return b
}
