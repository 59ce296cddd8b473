package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/moneymanager/internal/calculator"
	"github.com/mmynk/moneymanager/internal/storage"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", fmt.Errorf("get group: %w", storage.ErrNotFound), connect.CodeNotFound},
		{"validation", &calculator.ValidationError{Field: "amount", Reason: "must be positive"}, connect.CodeInvalidArgument},
		{"permission", errPermissionDenied, connect.CodePermissionDenied},
		{"canceled", fmt.Errorf("ledger snapshot: %w", context.Canceled), connect.CodeCanceled},
		{"deadline", fmt.Errorf("ledger snapshot: %w", context.DeadlineExceeded), connect.CodeDeadlineExceeded},
		{"passthrough", connect.NewError(connect.CodeAlreadyExists, errors.New("taken")), connect.CodeAlreadyExists},
		{"unknown", errors.New("disk on fire"), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, connect.CodeOf(toConnectError(tt.err)))
		})
	}
}

func TestFailLogsCanceledAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := fail(logger, "GetBalances failed", context.Canceled)

	assert.Equal(t, connect.CodeCanceled, connect.CodeOf(err))
	assert.Contains(t, buf.String(), "level=WARN")
}
