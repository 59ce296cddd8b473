package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/rpc"
	"github.com/mmynk/moneymanager/internal/storage"
)

// TransactionService implements rpc.TransactionServiceHandler. Every call is
// scoped to the authenticated user's own transactions.
type TransactionService struct {
	store  storage.TransactionStore
	logger *slog.Logger
	now    func() time.Time
}

var _ rpc.TransactionServiceHandler = (*TransactionService)(nil)

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store storage.TransactionStore, logger *slog.Logger) *TransactionService {
	return &TransactionService{store: store, logger: logger, now: time.Now}
}

func validateTransaction(title string, amount int64, typ string) error {
	if strings.TrimSpace(title) == "" {
		return invalidArgument("title required")
	}
	if amount <= 0 {
		return invalidArgument("amount must be positive")
	}
	if !models.TransactionType(typ).Valid() {
		return invalidArgument("type must be %q or %q", models.TransactionIncome, models.TransactionExpenses)
	}
	return nil
}

// ListTransactions returns the caller's transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, req *connect.Request[rpc.ListTransactionsRequest]) (*connect.Response[rpc.ListTransactionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fail(s.logger, "ListTransactions failed", err, "user_id", userID)
	}

	out := make([]rpc.Transaction, len(txs))
	for i, t := range txs {
		out[i] = toRPCTransaction(t)
	}
	return connect.NewResponse(&rpc.ListTransactionsResponse{Transactions: out}), nil
}

// CreateTransaction records a personal income or expense.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *connect.Request[rpc.CreateTransactionRequest]) (*connect.Response[rpc.CreateTransactionResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validateTransaction(req.Msg.Title, req.Msg.Amount, req.Msg.Type); err != nil {
		return nil, err
	}

	date := req.Msg.Date
	if date == "" {
		date = s.now().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, invalidArgument("date must be YYYY-MM-DD")
	}

	t := &models.Transaction{
		UserID: userID,
		Title:  strings.TrimSpace(req.Msg.Title),
		Amount: req.Msg.Amount,
		Type:   models.TransactionType(req.Msg.Type),
		Date:   date,
	}
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, fail(s.logger, "CreateTransaction failed", err, "user_id", userID)
	}

	s.logger.Info("Transaction created", "user_id", userID, "transaction_id", t.ID, "type", t.Type)
	return connect.NewResponse(&rpc.CreateTransactionResponse{Transaction: toRPCTransaction(t)}), nil
}

// UpdateTransaction changes title, amount and type. The date is kept.
func (s *TransactionService) UpdateTransaction(ctx context.Context, req *connect.Request[rpc.UpdateTransactionRequest]) (*connect.Response[rpc.UpdateTransactionResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	if req.Msg.ID == "" {
		return nil, invalidArgument("id required")
	}
	if err := validateTransaction(req.Msg.Title, req.Msg.Amount, req.Msg.Type); err != nil {
		return nil, err
	}

	t, err := s.store.GetTransaction(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, fail(s.logger, "UpdateTransaction failed", err, "transaction_id", req.Msg.ID)
	}
	t.Title = strings.TrimSpace(req.Msg.Title)
	t.Amount = req.Msg.Amount
	t.Type = models.TransactionType(req.Msg.Type)

	if err := s.store.UpdateTransaction(ctx, t); err != nil {
		return nil, fail(s.logger, "UpdateTransaction failed", err, "transaction_id", t.ID)
	}
	return connect.NewResponse(&rpc.UpdateTransactionResponse{Transaction: toRPCTransaction(t)}), nil
}

// DeleteTransaction removes one of the caller's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, req *connect.Request[rpc.DeleteTransactionRequest]) (*connect.Response[rpc.DeleteTransactionResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.DeleteTransaction(ctx, userID, req.Msg.ID); err != nil {
		return nil, fail(s.logger, "DeleteTransaction failed", err, "transaction_id", req.Msg.ID)
	}
	return connect.NewResponse(&rpc.DeleteTransactionResponse{}), nil
}

// ClearTransactions deletes all of the caller's transactions. It reports
// NotFound when there was nothing to delete.
func (s *TransactionService) ClearTransactions(ctx context.Context, req *connect.Request[rpc.ClearTransactionsRequest]) (*connect.Response[rpc.ClearTransactionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	n, err := s.store.ClearTransactions(ctx, userID)
	if err != nil {
		return nil, fail(s.logger, "ClearTransactions failed", err, "user_id", userID)
	}
	if n == 0 {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("no transactions to clear"))
	}

	s.logger.Info("Transactions cleared", "user_id", userID, "count", n)
	return connect.NewResponse(&rpc.ClearTransactionsResponse{Deleted: n}), nil
}

// GetSummary totals the caller's income and expenses.
func (s *TransactionService) GetSummary(ctx context.Context, req *connect.Request[rpc.GetSummaryRequest]) (*connect.Response[rpc.GetSummaryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fail(s.logger, "GetSummary failed", err, "user_id", userID)
	}

	sum := models.Summarize(txs)
	return connect.NewResponse(&rpc.GetSummaryResponse{
		Income:   sum.Income,
		Expenses: sum.Expenses,
		Balance:  sum.Balance(),
	}), nil
}
