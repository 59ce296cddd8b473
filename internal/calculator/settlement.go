package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// settledBelow is the magnitude under which a balance counts as zero.
// It absorbs the residue of non-terminating share divisions.
var settledBelow = decimal.New(1, -9)

// Transfer is a suggested payment from a debtor to a creditor.
type Transfer struct {
	From   string // member ID who owes
	To     string // member ID who is owed
	Amount int64
}

// position is a member's outstanding magnitude on one side of the ledger.
type position struct {
	memberID string
	amount   decimal.Decimal
}

// PlanSettlements produces transfers that bring every balance to zero.
//
// Greedy matching: creditors sorted by largest credit, debtors by largest debt,
// walked with one cursor each. Every step settles at least one side, so the
// result never has more than len(members)-1 transfers. Amounts are rounded to
// the nearest unit, ties away from zero; a transfer that rounds to zero is
// dropped. The input is not modified.
func PlanSettlements(b Balances) []Transfer {
	creditors, debtors := partition(b)

	var transfers []Transfer
	if len(creditors) == 0 || len(debtors) == 0 {
		return transfers
	}

	i, j := 0, 0
	owed := creditors[0].amount
	owes := debtors[0].amount
	for i < len(creditors) && j < len(debtors) {
		amount := decimal.Min(owed, owes)

		if rounded := amount.Round(0); rounded.IsPositive() {
			transfers = append(transfers, Transfer{
				From:   debtors[j].memberID,
				To:     creditors[i].memberID,
				Amount: rounded.IntPart(),
			})
		}

		owed = owed.Sub(amount)
		owes = owes.Sub(amount)

		if owes.LessThan(settledBelow) {
			j++
			if j < len(debtors) {
				owes = debtors[j].amount
			}
		}
		if owed.LessThan(settledBelow) {
			i++
			if i < len(creditors) {
				owed = creditors[i].amount
			}
		}
	}

	return transfers
}

// partition splits balances into creditors and debtors, each holding a
// positive magnitude and sorted largest first. Ties keep member order.
func partition(b Balances) (creditors, debtors []position) {
	for _, mb := range b.List() {
		switch {
		case mb.Balance.Abs().LessThan(settledBelow):
			// settled
		case mb.Balance.IsPositive():
			creditors = append(creditors, position{memberID: mb.MemberID, amount: mb.Balance})
		default:
			debtors = append(debtors, position{memberID: mb.MemberID, amount: mb.Balance.Neg()})
		}
	}

	sort.SliceStable(creditors, func(x, y int) bool {
		return creditors[x].amount.GreaterThan(creditors[y].amount)
	})
	sort.SliceStable(debtors, func(x, y int) bool {
		return debtors[x].amount.GreaterThan(debtors[y].amount)
	})
	return creditors, debtors
}
