package calculator

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc() []Member {
	return []Member{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}
}

func requireBalance(t *testing.T, b Balances, id, want string) {
	t.Helper()
	mb, ok := b.Get(id)
	require.True(t, ok, "missing balance for %s", id)
	assert.True(t, mb.Balance.Equal(decimal.RequireFromString(want)),
		"%s balance = %s, want %s", id, mb.Balance, want)
}

func TestComputeBalances_SharedExpense(t *testing.T) {
	b := ComputeBalances(abc(), []Entry{
		{Amount: 300, PaidBy: "a", SplitBetween: []string{"a", "b", "c"}},
	})

	requireBalance(t, b, "a", "200")
	requireBalance(t, b, "b", "-100")
	requireBalance(t, b, "c", "-100")

	a, _ := b.Get("a")
	assert.Equal(t, int64(300), a.TotalPaid)
	assert.Equal(t, "A", a.Name)
}

func TestComputeBalances_Payment(t *testing.T) {
	entries := []Entry{
		{Amount: 300, PaidBy: "a", SplitBetween: []string{"a", "b", "c"}},
		{Amount: 100, PaidBy: "b", SplitBetween: []string{"a"}},
	}

	b := ComputeBalances(abc(), entries)

	requireBalance(t, b, "a", "100")
	requireBalance(t, b, "b", "0")
	requireBalance(t, b, "c", "-100")
}

func TestComputeBalances_PaymentOnBaseline(t *testing.T) {
	members := []Member{
		{ID: "a", Name: "A", Balance: 200},
		{ID: "b", Name: "B", Balance: -100},
		{ID: "c", Name: "C", Balance: -100},
	}

	b := ComputeBalances(members, []Entry{{Amount: 100, PaidBy: "b", SplitBetween: []string{"a"}}})

	requireBalance(t, b, "a", "100")
	requireBalance(t, b, "b", "0")
	requireBalance(t, b, "c", "-100")
}

func TestComputeBalances_AddMoneyContribution(t *testing.T) {
	// a contributes 90 split among all three: net +60 for a
	b := ComputeBalances(abc(), []Entry{{Amount: 90, PaidBy: "a", SplitBetween: []string{"a", "b", "c"}}})

	requireBalance(t, b, "a", "60")
	requireBalance(t, b, "b", "-30")
	requireBalance(t, b, "c", "-30")
}

func TestComputeBalances_SelfExpenseIsNoop(t *testing.T) {
	base := []Entry{{Amount: 300, PaidBy: "a", SplitBetween: []string{"a", "b", "c"}}}
	withSelf := append([]Entry{{Amount: 77, PaidBy: "b", SplitBetween: []string{"b"}}}, base...)

	before := ComputeBalances(abc(), base)
	after := ComputeBalances(abc(), withSelf)

	for _, mb := range before.List() {
		got, ok := after.Get(mb.MemberID)
		require.True(t, ok)
		assert.True(t, mb.Balance.Equal(got.Balance), "%s changed: %s -> %s", mb.MemberID, mb.Balance, got.Balance)
	}
}

func TestComputeBalances_UnknownMembersSkipped(t *testing.T) {
	b := ComputeBalances(abc(), []Entry{
		{Amount: 300, PaidBy: "ghost", SplitBetween: []string{"a", "b", "c"}},
		{Amount: 40, PaidBy: "a", SplitBetween: []string{"a", "removed"}},
	})

	assert.Equal(t, 3, b.Len())
	_, ok := b.Get("ghost")
	assert.False(t, ok)
	_, ok = b.Get("removed")
	assert.False(t, ok)

	// ghost's credit is lost, a is credited 40 and debited 20
	requireBalance(t, b, "a", "-80")
	requireBalance(t, b, "b", "-100")
	requireBalance(t, b, "c", "-100")
}

func TestComputeBalances_EmptyGroup(t *testing.T) {
	b := ComputeBalances(nil, []Entry{{Amount: 10, PaidBy: "a", SplitBetween: []string{"a"}}})

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.List())
	assert.True(t, b.Sum().IsZero())
}

func TestComputeBalances_ZeroSum(t *testing.T) {
	members := []Member{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}
	entries := randomEntries(rand.New(rand.NewSource(7)), members, 200)

	b := ComputeBalances(members, entries)

	assert.True(t, b.Sum().Abs().LessThan(decimal.New(1, -6)), "sum = %s", b.Sum())
}

func TestComputeBalances_OrderIndependent(t *testing.T) {
	members := []Member{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	rng := rand.New(rand.NewSource(42))
	entries := randomEntries(rng, members, 50)

	want := ComputeBalances(members, entries)

	for round := 0; round < 10; round++ {
		shuffled := append([]Entry(nil), entries...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := ComputeBalances(members, shuffled)
		for _, mb := range want.List() {
			g, _ := got.Get(mb.MemberID)
			assert.True(t, mb.Balance.Equal(g.Balance), "round %d: %s = %s, want %s", round, mb.MemberID, g.Balance, mb.Balance)
			assert.Equal(t, mb.TotalPaid, g.TotalPaid)
		}
	}
}

// randomEntries builds n valid entries over members with random payers and splits.
func randomEntries(rng *rand.Rand, members []Member, n int) []Entry {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		perm := rng.Perm(len(members))
		k := 1 + rng.Intn(len(members))
		split := make([]string, k)
		for x := 0; x < k; x++ {
			split[x] = members[perm[x]].ID
		}
		entries = append(entries, Entry{
			Amount:       int64(1 + rng.Intn(1000)),
			PaidBy:       members[rng.Intn(len(members))].ID,
			SplitBetween: split,
		})
	}
	return entries
}
