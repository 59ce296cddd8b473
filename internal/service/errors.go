package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/moneymanager/internal/auth"
	"github.com/mmynk/moneymanager/internal/calculator"
	"github.com/mmynk/moneymanager/internal/storage"
)

var errPermissionDenied = errors.New("permission denied")

// invalidArgument builds a CodeInvalidArgument error from a message.
func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// toConnectError maps storage and domain errors onto Connect codes.
// Errors that are already *connect.Error pass through unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	var validationErr *calculator.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.As(err, &validationErr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, errPermissionDenied):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return connect.FromContextError(err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// fail logs err under msg and returns it as a Connect error.
func fail(logger *slog.Logger, msg string, err error, args ...any) error {
	err = toConnectError(err)
	args = append(args, "error", err)
	if connect.CodeOf(err) == connect.CodeInternal {
		logger.Error(msg, args...)
	} else {
		logger.Warn(msg, args...)
	}
	return err
}
