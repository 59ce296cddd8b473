package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	entries := []Entry{
		{Amount: 300, PaidBy: "a", SplitBetween: []string{"a", "b", "c"}},
		{Amount: 100, PaidBy: "b", SplitBetween: []string{"a"}},
	}

	r := BuildReport(abc(), entries, 500)

	assert.Equal(t, int64(400), r.TotalExpenses)
	assert.Equal(t, 3, r.TotalMembers)
	assert.Equal(t, int64(500), r.MonthlyContribution)
	assert.Len(t, r.Balances, 3)
	assert.Equal(t, "a", r.Balances[0].MemberID)
	assert.Equal(t, []Transfer{{From: "c", To: "a", Amount: 100}}, r.Settlements)
}

func TestBuildReport_EmptyGroup(t *testing.T) {
	r := BuildReport(nil, nil, 0)

	assert.Empty(t, r.Balances)
	assert.Empty(t, r.Settlements)
	assert.Zero(t, r.TotalExpenses)
	assert.Zero(t, r.TotalMembers)
}
