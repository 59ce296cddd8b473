package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/moneymanager/internal/calculator"
	"github.com/mmynk/moneymanager/internal/events"
	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/rpc"
	"github.com/mmynk/moneymanager/internal/storage"
)

type ledgerFixture struct {
	env   *testEnv
	token string
	group rpc.Group
	alice string
	bob   string
	carol string
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	env := setupTestServer(t)
	token, _ := env.register(t, "alice@example.com", "Alice")
	group := createRoommates(t, env, token)
	return &ledgerFixture{
		env:   env,
		token: token,
		group: group,
		alice: group.Members[0].ID,
		bob:   group.Members[1].ID,
		carol: group.Members[2].ID,
	}
}

func (f *ledgerFixture) addExpense(t *testing.T, req *rpc.AddExpenseRequest) rpc.LedgerEntry {
	t.Helper()
	req.GroupID = f.group.ID
	resp, err := f.env.ledger.AddExpense(context.Background(), as(f.token, req))
	require.NoError(t, err)
	return resp.Msg.Entry
}

func (f *ledgerFixture) balances(t *testing.T) *rpc.GetBalancesResponse {
	t.Helper()
	resp, err := f.env.ledger.GetBalances(context.Background(), as(f.token, &rpc.GetBalancesRequest{GroupID: f.group.ID}))
	require.NoError(t, err)
	return resp.Msg
}

func balanceOf(t *testing.T, report *rpc.GetBalancesResponse, memberID string) float64 {
	t.Helper()
	for _, b := range report.Balances {
		if b.MemberID == memberID {
			return b.Balance
		}
	}
	t.Fatalf("no balance for member %s", memberID)
	return 0
}

func TestGetBalances_SharedExpense(t *testing.T) {
	f := newLedgerFixture(t)
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "Groceries", Amount: 300, PaidBy: f.alice})

	report := f.balances(t)

	require.Len(t, report.Balances, 3)
	assert.Equal(t, "Alice", report.Balances[0].Name, "balances follow member order")
	assert.Equal(t, int64(300), report.Balances[0].TotalPaid)
	assert.Equal(t, 200.0, balanceOf(t, report, f.alice))
	assert.Equal(t, -100.0, balanceOf(t, report, f.bob))
	assert.Equal(t, -100.0, balanceOf(t, report, f.carol))

	assert.Equal(t, []rpc.Transfer{
		{From: f.bob, To: f.alice, FromName: "Bob", ToName: "Alice", Amount: 100},
		{From: f.carol, To: f.alice, FromName: "Carol", ToName: "Alice", Amount: 100},
	}, report.Settlements)
	assert.Equal(t, int64(300), report.TotalExpenses)
	assert.Equal(t, 3, report.TotalMembers)
	assert.Equal(t, int64(500), report.MonthlyContribution)
}

func TestGetBalances_EmptyLedger(t *testing.T) {
	f := newLedgerFixture(t)
	report := f.balances(t)

	require.Len(t, report.Balances, 3)
	for _, b := range report.Balances {
		assert.Zero(t, b.Balance)
	}
	assert.Empty(t, report.Settlements)
	assert.Zero(t, report.TotalExpenses)
}

func TestGetBalances_ThirdsRoundToNearestUnit(t *testing.T) {
	f := newLedgerFixture(t)
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "Pizza", Amount: 100, PaidBy: f.alice})

	report := f.balances(t)
	assert.InDelta(t, 66.6667, balanceOf(t, report, f.alice), 1e-3)
	assert.InDelta(t, -33.3333, balanceOf(t, report, f.bob), 1e-3)
	require.Len(t, report.Settlements, 2)
	for _, s := range report.Settlements {
		assert.Equal(t, int64(33), s.Amount)
	}
}

func TestRecordPayment(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "Groceries", Amount: 300, PaidBy: f.alice})

	resp, err := f.env.ledger.RecordPayment(ctx, as(f.token, &rpc.RecordPaymentRequest{
		GroupID: f.group.ID, From: f.bob, To: f.alice, Amount: 100,
	}))
	require.NoError(t, err)
	assert.Equal(t, "Payment", resp.Msg.Entry.Kind)
	assert.Equal(t, "Payment from Bob to Alice", resp.Msg.Entry.Title)
	assert.Equal(t, []string{f.alice}, resp.Msg.Entry.SplitBetween)

	report := f.balances(t)
	assert.Equal(t, 100.0, balanceOf(t, report, f.alice))
	assert.Equal(t, 0.0, balanceOf(t, report, f.bob))
	assert.Equal(t, []rpc.Transfer{
		{From: f.carol, To: f.alice, FromName: "Carol", ToName: "Alice", Amount: 100},
	}, report.Settlements)

	_, err = f.env.ledger.RecordPayment(ctx, as(f.token, &rpc.RecordPaymentRequest{
		GroupID: f.group.ID, From: f.bob, Amount: 100,
	}))
	requireCode(t, connect.CodeInvalidArgument, err)
}

func TestAddMoney(t *testing.T) {
	f := newLedgerFixture(t)

	resp, err := f.env.ledger.AddMoney(context.Background(), as(f.token, &rpc.AddMoneyRequest{
		GroupID: f.group.ID, MemberID: f.carol, Amount: 90, Note: "March pot",
	}))
	require.NoError(t, err)
	assert.Equal(t, "March pot", resp.Msg.Entry.Title)
	assert.Equal(t, "Payment", resp.Msg.Entry.Kind)
	assert.Equal(t, []string{f.alice, f.bob, f.carol}, resp.Msg.Entry.SplitBetween)

	report := f.balances(t)
	assert.Equal(t, 60.0, balanceOf(t, report, f.carol))
	assert.Equal(t, -30.0, balanceOf(t, report, f.alice))
	assert.Equal(t, -30.0, balanceOf(t, report, f.bob))
}

func TestAddExpense_Defaults(t *testing.T) {
	f := newLedgerFixture(t)

	entry := f.addExpense(t, &rpc.AddExpenseRequest{Amount: 60, PaidBy: f.bob})

	assert.Equal(t, "Split with Alice, Bob, Carol", entry.Title)
	assert.Equal(t, "Expense", entry.Kind)
	assert.Equal(t, []string{f.alice, f.bob, f.carol}, entry.SplitBetween)
	assert.NotEmpty(t, entry.Date)

	subset := f.addExpense(t, &rpc.AddExpenseRequest{Title: "Taxi", Amount: 40, PaidBy: f.bob, SplitBetween: []string{f.bob, f.carol}, Date: "2026-02-14"})
	assert.Equal(t, "2026-02-14", subset.Date)

	list, err := f.env.ledger.ListEntries(context.Background(), as(f.token, &rpc.ListEntriesRequest{GroupID: f.group.ID}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Entries, 2)
}

func TestAddExpense_Validation(t *testing.T) {
	f := newLedgerFixture(t)

	tests := []struct {
		name string
		req  *rpc.AddExpenseRequest
	}{
		{"zero amount", &rpc.AddExpenseRequest{Title: "x", Amount: 0, PaidBy: f.alice}},
		{"negative amount", &rpc.AddExpenseRequest{Title: "x", Amount: -10, PaidBy: f.alice}},
		{"missing payer", &rpc.AddExpenseRequest{Title: "x", Amount: 10}},
		{"duplicate split", &rpc.AddExpenseRequest{Title: "x", Amount: 10, PaidBy: f.alice, SplitBetween: []string{f.bob, f.bob}}},
		{"unknown kind", &rpc.AddExpenseRequest{Title: "x", Amount: 10, PaidBy: f.alice, Kind: "Gift"}},
		{"bad date", &rpc.AddExpenseRequest{Title: "x", Amount: 10, PaidBy: f.alice, Date: "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.GroupID = f.group.ID
			_, err := f.env.ledger.AddExpense(context.Background(), as(f.token, tt.req))
			requireCode(t, connect.CodeInvalidArgument, err)
		})
	}
}

func TestAddExpense_UnknownMembersAreSkipped(t *testing.T) {
	f := newLedgerFixture(t)
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "x", Amount: 90, PaidBy: "ghost", SplitBetween: []string{f.alice, f.bob, f.carol}})

	report := f.balances(t)
	for _, b := range report.Balances {
		assert.Equal(t, -30.0, b.Balance, b.Name)
	}
}

func TestRemovedMemberNoLongerCounts(t *testing.T) {
	f := newLedgerFixture(t)
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "Groceries", Amount: 300, PaidBy: f.alice})

	_, err := f.env.groups.RemoveMember(context.Background(), as(f.token, &rpc.RemoveMemberRequest{GroupID: f.group.ID, MemberID: f.carol}))
	require.NoError(t, err)

	report := f.balances(t)
	require.Len(t, report.Balances, 2)
	assert.Equal(t, 200.0, balanceOf(t, report, f.alice))
	assert.Equal(t, -100.0, balanceOf(t, report, f.bob))
	assert.Equal(t, []rpc.Transfer{
		{From: f.bob, To: f.alice, FromName: "Bob", ToName: "Alice", Amount: 100},
	}, report.Settlements)
}

func TestDeleteEntryAndReset(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	entry := f.addExpense(t, &rpc.AddExpenseRequest{Title: "Groceries", Amount: 300, PaidBy: f.alice})
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "Internet", Amount: 60, PaidBy: f.bob})

	_, err := f.env.ledger.DeleteEntry(ctx, as(f.token, &rpc.DeleteEntryRequest{GroupID: f.group.ID, EntryID: entry.ID}))
	require.NoError(t, err)
	_, err = f.env.ledger.DeleteEntry(ctx, as(f.token, &rpc.DeleteEntryRequest{GroupID: f.group.ID, EntryID: entry.ID}))
	requireCode(t, connect.CodeNotFound, err)

	report := f.balances(t)
	assert.Equal(t, 40.0, balanceOf(t, report, f.bob))
	assert.Equal(t, int64(60), report.TotalExpenses)

	_, err = f.env.groups.ResetBalances(ctx, as(f.token, &rpc.ResetBalancesRequest{GroupID: f.group.ID}))
	require.NoError(t, err)

	report = f.balances(t)
	for _, b := range report.Balances {
		assert.Zero(t, b.Balance)
	}
	assert.Empty(t, report.Settlements)

	assert.Equal(t, []string{
		events.EntryRecorded,
		events.EntryRecorded,
		events.EntryDeleted,
		events.LedgerReset,
	}, f.env.publisher.types())
}

func TestLedgerAccess(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	mallory, _ := f.env.register(t, "mallory@example.com", "Mallory")

	_, err := f.env.ledger.AddExpense(ctx, as(mallory, &rpc.AddExpenseRequest{GroupID: f.group.ID, Title: "x", Amount: 10, PaidBy: f.alice}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = f.env.ledger.GetBalances(ctx, as(mallory, &rpc.GetBalancesRequest{GroupID: f.group.ID}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = f.env.ledger.GetBalances(ctx, connect.NewRequest(&rpc.GetBalancesRequest{GroupID: f.group.ID}))
	requireCode(t, connect.CodeUnauthenticated, err)

	_, err = f.env.ledger.ListEntries(ctx, as(f.token, &rpc.ListEntriesRequest{GroupID: "missing"}))
	requireCode(t, connect.CodeNotFound, err)
}

func TestGetBalances_CachedPerLedgerVersion(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "Groceries", Amount: 300, PaidBy: f.alice})

	f.balances(t)
	f.balances(t)

	expected := `
# HELP moneymanager_balance_report_cache_total Balance report cache lookups by result.
# TYPE moneymanager_balance_report_cache_total counter
moneymanager_balance_report_cache_total{result="hit"} 1
moneymanager_balance_report_cache_total{result="miss"} 1
`
	require.NoError(t, testutil.GatherAndCompare(f.env.metrics.Registry(), strings.NewReader(expected),
		"moneymanager_balance_report_cache_total"))

	// Renaming bumps the ledger version, so the next report is recomputed.
	_, err := f.env.groups.RenameMember(ctx, as(f.token, &rpc.RenameMemberRequest{GroupID: f.group.ID, MemberID: f.bob, Name: "Robert"}))
	require.NoError(t, err)
	report := f.balances(t)
	assert.Equal(t, "Robert", report.Settlements[0].FromName)

	// The contribution is not versioned and is always current.
	amount := int64(750)
	_, err = f.env.groups.UpdateGroup(ctx, as(f.token, &rpc.UpdateGroupRequest{GroupID: f.group.ID, MonthlyContribution: &amount}))
	require.NoError(t, err)
	assert.Equal(t, int64(750), f.balances(t).MonthlyContribution)
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		names        []string
		wantContains string
	}{
		{[]string{}, "Expense - 2026-03-01"},
		{[]string{"Alice"}, "Split with Alice"},
		{[]string{"Alice", "Bob"}, "Split with Alice, Bob"},
		{[]string{"Alice", "Bob", "Charlie"}, "Split with Alice, Bob, Charlie"},
		{[]string{"Alice", "Bob", "Charlie", "Diana"}, "and 2 others"},
	}

	for _, tt := range tests {
		t.Run(tt.wantContains, func(t *testing.T) {
			got := generateTitle(tt.names, "2026-03-01")
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("generateTitle(%v) = %q, want to contain %q", tt.names, got, tt.wantContains)
			}
		})
	}
}

// slowSnapshotStore holds LedgerSnapshot until release is closed or the
// context passed to it is done.
type slowSnapshotStore struct {
	storage.Store
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *slowSnapshotStore) LedgerSnapshot(ctx context.Context, groupID string) (*models.Group, []*models.LedgerEntry, error) {
	s.once.Do(func() { close(s.started) })
	select {
	case <-s.release:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
	return s.Store.LedgerSnapshot(ctx, groupID)
}

func TestReport_SharedComputationSurvivesFirstCallerCancel(t *testing.T) {
	f := newLedgerFixture(t)
	f.addExpense(t, &rpc.AddExpenseRequest{Title: "Groceries", Amount: 300, PaidBy: f.alice})

	store := &slowSnapshotStore{Store: f.env.store, started: make(chan struct{}), release: make(chan struct{})}
	svc := NewLedgerService(store, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	group, err := f.env.store.GetGroup(context.Background(), f.group.ID)
	require.NoError(t, err)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.report(firstCtx, group)
		firstErr <- err
	}()
	<-store.started

	type result struct {
		report calculator.Report
		err    error
	}
	second := make(chan result, 1)
	go func() {
		r, err := svc.report(context.Background(), group)
		second <- result{r, err}
	}()

	// Give the second caller time to join the in-flight computation.
	time.Sleep(50 * time.Millisecond)
	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(store.release)
	got := <-second
	require.NoError(t, got.err)
	require.Len(t, got.report.Settlements, 2)
	assert.Equal(t, int64(300), got.report.TotalExpenses)
}
