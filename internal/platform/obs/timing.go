package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

// RequestIDKey carries the per-request id assigned by the HTTP middleware.
const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID returns a context carrying the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs an operation's duration on completion, tagged with the request
// id. Use as: defer obs.Time(ctx, "op")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.Error("operation failed", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds(), "error", *errp)
			return
		}
		slog.Debug("operation complete", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
