package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns an interceptor that logs every call with its
// procedure, owner and duration. Register it before RequireAuth so rejected
// calls are logged too; the owner is picked up once authentication succeeds.
// Client-side failures are logged at WARN, server-side ones at ERROR. A nil
// logger uses slog.Default().
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			c := &caller{userID: GetUserID(ctx)}
			resp, err := next(context.WithValue(ctx, callerKey, c), req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", c.userID,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err == nil {
				logger.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, "code", code.String())
			var connectErr *connect.Error
			if errors.As(err, &connectErr) {
				attrs = append(attrs, "error", connectErr.Message())
			} else {
				attrs = append(attrs, "error", err)
			}

			if serverFault(code) {
				logger.ErrorContext(ctx, "RPC error", attrs...)
			} else {
				logger.WarnContext(ctx, "RPC error", attrs...)
			}
			return resp, err
		}
	}
}

func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeUnavailable, connect.CodeDataLoss:
		return true
	}
	return false
}
