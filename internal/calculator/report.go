package calculator

// Report is the derived balance summary for one group. It is never persisted.
type Report struct {
	Balances            []MemberBalance
	Settlements         []Transfer
	TotalExpenses       int64
	TotalMembers        int
	MonthlyContribution int64
}

// BuildReport computes balances and settlements for a group's ledger.
// TotalExpenses sums every entry, payments included.
func BuildReport(members []Member, entries []Entry, monthlyContribution int64) Report {
	balances := ComputeBalances(members, entries)

	var total int64
	for _, e := range entries {
		total += e.Amount
	}

	return Report{
		Balances:            balances.List(),
		Settlements:         PlanSettlements(balances),
		TotalExpenses:       total,
		TotalMembers:        len(members),
		MonthlyContribution: monthlyContribution,
	}
}
