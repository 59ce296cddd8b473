package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/sync/singleflight"

	"github.com/mmynk/moneymanager/internal/cache"
	"github.com/mmynk/moneymanager/internal/calculator"
	"github.com/mmynk/moneymanager/internal/events"
	"github.com/mmynk/moneymanager/internal/metrics"
	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/rpc"
	"github.com/mmynk/moneymanager/internal/storage"
)

// LedgerService implements rpc.LedgerServiceHandler: recording expenses and
// payments and reporting balances with suggested settlements.
type LedgerService struct {
	store     storage.Store
	reports   cache.Cache[calculator.Report]
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	flight    singleflight.Group
	now       func() time.Time
}

var _ rpc.LedgerServiceHandler = (*LedgerService)(nil)

// reportTimeout bounds a shared report computation.
const reportTimeout = 30 * time.Second

// NewLedgerService creates a LedgerService. A nil reports cache falls back to
// a small in-process LRU, a nil publisher discards events and nil metrics
// record nothing.
func NewLedgerService(store storage.Store, reports cache.Cache[calculator.Report], publisher events.Publisher, m *metrics.Metrics, logger *slog.Logger) *LedgerService {
	if reports == nil {
		reports = cache.NewLRUCache[calculator.Report](256, 10*time.Minute)
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &LedgerService{
		store:     store,
		reports:   reports,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// generateTitle creates a title for an expense recorded without one.
func generateTitle(names []string, date string) string {
	if len(names) == 0 {
		return fmt.Sprintf("Expense - %s", date)
	}
	if len(names) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(names[:2], ", "),
		len(names)-2,
	)
}

// memberNames resolves IDs to display names, keeping unknown IDs as-is.
func memberNames(group *models.Group, ids []string) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id
		if m, ok := group.FindMember(id); ok {
			names[i] = m.Name
		}
	}
	return names
}

func (s *LedgerService) today() string {
	return s.now().Format(time.DateOnly)
}

// record validates and stores an entry, then announces it.
func (s *LedgerService) record(ctx context.Context, userID string, entry *models.LedgerEntry) error {
	err := calculator.Entry{
		Amount:       entry.Amount,
		PaidBy:       entry.PaidBy,
		SplitBetween: entry.SplitBetween,
	}.Validate()
	if err != nil {
		return err
	}
	if entry.Kind != models.EntryKindExpense && entry.Kind != models.EntryKindPayment {
		return &calculator.ValidationError{Field: "kind", Reason: fmt.Sprintf("must be %q or %q", models.EntryKindExpense, models.EntryKindPayment)}
	}
	if entry.Date == "" {
		entry.Date = s.today()
	} else if _, err := time.Parse(time.DateOnly, entry.Date); err != nil {
		return &calculator.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return err
	}
	s.metrics.EntryRecorded(string(entry.Kind))

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.EntryRecorded,
		GroupID:    entry.GroupID,
		EntryID:    entry.ID,
		Kind:       string(entry.Kind),
		Amount:     entry.Amount,
		ActorID:    userID,
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("Ledger entry recorded",
		"group_id", entry.GroupID,
		"entry_id", entry.ID,
		"kind", entry.Kind,
		"amount", entry.Amount,
	)
	return nil
}

// ListEntries returns the group's ledger, newest first.
func (s *LedgerService) ListEntries(ctx context.Context, req *connect.Request[rpc.ListEntriesRequest]) (*connect.Response[rpc.ListEntriesResponse], error) {
	group, _, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "ListEntries failed", err, "group_id", req.Msg.GroupID)
	}

	entries, err := s.store.ListEntries(ctx, group.ID)
	if err != nil {
		return nil, fail(s.logger, "ListEntries failed", err, "group_id", group.ID)
	}

	out := make([]rpc.LedgerEntry, len(entries))
	for i, e := range entries {
		out[i] = toRPCEntry(e)
	}
	return connect.NewResponse(&rpc.ListEntriesResponse{Entries: out}), nil
}

// AddExpense records a shared expense. Without an explicit split the amount
// is shared by every current member.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[rpc.AddExpenseRequest]) (*connect.Response[rpc.AddExpenseResponse], error) {
	group, userID, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "AddExpense failed", err, "group_id", req.Msg.GroupID)
	}

	split := req.Msg.SplitBetween
	if len(split) == 0 {
		split = group.MemberIDs()
	}
	kind := models.EntryKind(req.Msg.Kind)
	if kind == "" {
		kind = models.EntryKindExpense
	}

	entry := &models.LedgerEntry{
		GroupID:      group.ID,
		Title:        strings.TrimSpace(req.Msg.Title),
		Amount:       req.Msg.Amount,
		PaidBy:       req.Msg.PaidBy,
		SplitBetween: split,
		Kind:         kind,
		Date:         req.Msg.Date,
	}
	if entry.Title == "" {
		date := entry.Date
		if date == "" {
			date = s.today()
		}
		entry.Title = generateTitle(memberNames(group, split), date)
	}

	if err := s.record(ctx, userID, entry); err != nil {
		return nil, fail(s.logger, "AddExpense failed", err, "group_id", group.ID)
	}
	return connect.NewResponse(&rpc.AddExpenseResponse{Entry: toRPCEntry(entry)}), nil
}

// DeleteEntry removes one entry; balances are recomputed from what remains.
func (s *LedgerService) DeleteEntry(ctx context.Context, req *connect.Request[rpc.DeleteEntryRequest]) (*connect.Response[rpc.DeleteEntryResponse], error) {
	group, userID, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "DeleteEntry failed", err, "group_id", req.Msg.GroupID)
	}

	if err := s.store.DeleteEntry(ctx, group.ID, req.Msg.EntryID); err != nil {
		return nil, fail(s.logger, "DeleteEntry failed", err, "group_id", group.ID, "entry_id", req.Msg.EntryID)
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.EntryDeleted,
		GroupID:    group.ID,
		EntryID:    req.Msg.EntryID,
		ActorID:    userID,
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("Ledger entry deleted", "group_id", group.ID, "entry_id", req.Msg.EntryID)
	return connect.NewResponse(&rpc.DeleteEntryResponse{}), nil
}

// RecordPayment records money handed from one member to another.
func (s *LedgerService) RecordPayment(ctx context.Context, req *connect.Request[rpc.RecordPaymentRequest]) (*connect.Response[rpc.RecordPaymentResponse], error) {
	group, userID, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "RecordPayment failed", err, "group_id", req.Msg.GroupID)
	}
	if req.Msg.To == "" {
		return nil, invalidArgument("payment receiver required")
	}

	title := strings.TrimSpace(req.Msg.Note)
	if title == "" {
		names := memberNames(group, []string{req.Msg.From, req.Msg.To})
		title = fmt.Sprintf("Payment from %s to %s", names[0], names[1])
	}

	entry := &models.LedgerEntry{
		GroupID:      group.ID,
		Title:        title,
		Amount:       req.Msg.Amount,
		PaidBy:       req.Msg.From,
		SplitBetween: []string{req.Msg.To},
		Kind:         models.EntryKindPayment,
	}
	if err := s.record(ctx, userID, entry); err != nil {
		return nil, fail(s.logger, "RecordPayment failed", err, "group_id", group.ID)
	}
	return connect.NewResponse(&rpc.RecordPaymentResponse{Entry: toRPCEntry(entry)}), nil
}

// AddMoney records a member contributing to the group pot. The amount is
// shared by everyone who is a member at this moment.
func (s *LedgerService) AddMoney(ctx context.Context, req *connect.Request[rpc.AddMoneyRequest]) (*connect.Response[rpc.AddMoneyResponse], error) {
	group, userID, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "AddMoney failed", err, "group_id", req.Msg.GroupID)
	}

	title := strings.TrimSpace(req.Msg.Note)
	if title == "" {
		title = fmt.Sprintf("%s added money", memberNames(group, []string{req.Msg.MemberID})[0])
	}

	entry := &models.LedgerEntry{
		GroupID:      group.ID,
		Title:        title,
		Amount:       req.Msg.Amount,
		PaidBy:       req.Msg.MemberID,
		SplitBetween: group.MemberIDs(),
		Kind:         models.EntryKindPayment,
	}
	if err := s.record(ctx, userID, entry); err != nil {
		return nil, fail(s.logger, "AddMoney failed", err, "group_id", group.ID)
	}
	return connect.NewResponse(&rpc.AddMoneyResponse{Entry: toRPCEntry(entry)}), nil
}

// GetBalances reports every member's balance and the transfers that settle them.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[rpc.GetBalancesRequest]) (*connect.Response[rpc.GetBalancesResponse], error) {
	group, _, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "GetBalances failed", err, "group_id", req.Msg.GroupID)
	}

	report, err := s.report(ctx, group)
	if err != nil {
		return nil, fail(s.logger, "GetBalances failed", err, "group_id", group.ID)
	}
	// Not part of the ledger version, so always taken from the fresh read.
	report.MonthlyContribution = group.MonthlyContribution

	return connect.NewResponse(toRPCReport(report)), nil
}

// report returns the balance report for the group's current ledger version,
// computing it at most once per version.
func (s *LedgerService) report(ctx context.Context, group *models.Group) (calculator.Report, error) {
	key := cache.ReportKey(group.ID, group.LedgerVersion)

	cached, ok, err := s.reports.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Report cache read failed", "key", key, "error", err)
	}
	s.metrics.ReportCacheLookup(ok)
	if ok {
		return cached, nil
	}

	ch := s.flight.DoChan(key, func() (any, error) {
		// Shared by every caller waiting on key, so it must outlive whichever
		// request happened to start it.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
		defer cancel()

		snapshot, entries, err := s.store.LedgerSnapshot(ctx, group.ID)
		if err != nil {
			return nil, err
		}

		report := buildReport(snapshot, entries)
		s.metrics.ObserveSettlement(len(report.Settlements))

		// The snapshot may be newer than the version we were asked for.
		snapKey := cache.ReportKey(snapshot.ID, snapshot.LedgerVersion)
		if err := s.reports.Set(ctx, snapKey, report); err != nil {
			s.logger.Warn("Report cache write failed", "key", snapKey, "error", err)
		}
		return report, nil
	})

	select {
	case <-ctx.Done():
		return calculator.Report{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return calculator.Report{}, res.Err
		}
		return res.Val.(calculator.Report), nil
	}
}

// buildReport runs the balance engine over a consistent snapshot.
func buildReport(group *models.Group, entries []*models.LedgerEntry) calculator.Report {
	members := make([]calculator.Member, len(group.Members))
	for i, m := range group.Members {
		members[i] = calculator.Member{ID: m.ID, Name: m.Name}
	}

	calcEntries := make([]calculator.Entry, len(entries))
	for i, e := range entries {
		calcEntries[i] = calculator.Entry{
			Amount:       e.Amount,
			PaidBy:       e.PaidBy,
			SplitBetween: e.SplitBetween,
		}
	}

	return calculator.BuildReport(members, calcEntries, group.MonthlyContribution)
}

func toRPCReport(r calculator.Report) *rpc.GetBalancesResponse {
	names := make(map[string]string, len(r.Balances))
	balances := make([]rpc.MemberBalance, len(r.Balances))
	for i, b := range r.Balances {
		names[b.MemberID] = b.Name
		balances[i] = rpc.MemberBalance{
			MemberID:  b.MemberID,
			Name:      b.Name,
			TotalPaid: b.TotalPaid,
			Balance:   b.Balance.InexactFloat64(),
		}
	}

	settlements := make([]rpc.Transfer, len(r.Settlements))
	for i, t := range r.Settlements {
		settlements[i] = rpc.Transfer{
			From:     t.From,
			To:       t.To,
			FromName: names[t.From],
			ToName:   names[t.To],
			Amount:   t.Amount,
		}
	}

	return &rpc.GetBalancesResponse{
		Balances:            balances,
		Settlements:         settlements,
		TotalExpenses:       r.TotalExpenses,
		TotalMembers:        r.TotalMembers,
		MonthlyContribution: r.MonthlyContribution,
	}
}
