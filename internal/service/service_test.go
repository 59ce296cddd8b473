package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/moneymanager/internal/auth"
	"github.com/mmynk/moneymanager/internal/events"
	"github.com/mmynk/moneymanager/internal/metrics"
	"github.com/mmynk/moneymanager/internal/middleware"
	"github.com/mmynk/moneymanager/internal/rpc"
	"github.com/mmynk/moneymanager/internal/storage/sqlite"
)

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type testEnv struct {
	store     *sqlite.SQLiteStore
	publisher *recordingPublisher
	metrics   *metrics.Metrics
	ledgerSvc *LedgerService

	auth         *rpc.AuthServiceClient
	transactions *rpc.TransactionServiceClient
	groups       *rpc.GroupServiceClient
	ledger       *rpc.LedgerServiceClient
}

// setupTestServer serves every service over httptest with a fresh database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	env := &testEnv{
		store:     store,
		publisher: &recordingPublisher{},
		metrics:   metrics.New(),
	}
	env.ledgerSvc = NewLedgerService(store, nil, env.publisher, env.metrics, logger)

	public := connect.WithInterceptors(middleware.OptionalAuth(jwtManager))
	private := connect.WithInterceptors(middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(rpc.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), public))
	mux.Handle(rpc.NewTransactionServiceHandler(NewTransactionService(store, logger), private))
	mux.Handle(rpc.NewGroupServiceHandler(NewGroupService(store, env.publisher, logger), private))
	mux.Handle(rpc.NewLedgerServiceHandler(env.ledgerSvc, private))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	env.auth = rpc.NewAuthServiceClient(http.DefaultClient, server.URL)
	env.transactions = rpc.NewTransactionServiceClient(http.DefaultClient, server.URL)
	env.groups = rpc.NewGroupServiceClient(http.DefaultClient, server.URL)
	env.ledger = rpc.NewLedgerServiceClient(http.DefaultClient, server.URL)
	return env
}

// register creates an account and returns its bearer token.
func (e *testEnv) register(t *testing.T, email, displayName string) (string, rpc.User) {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&rpc.RegisterRequest{
		Email:       email,
		DisplayName: displayName,
		Password:    "correct-horse",
	}))
	require.NoError(t, err)
	return resp.Msg.Token, resp.Msg.User
}

// as builds a request authenticated with token.
func as[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

// requireCode asserts err is a Connect error with the given code.
func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}
