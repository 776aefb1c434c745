package obs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

// RequestIDKey carries the per-request id assigned by the HTTP middleware.
const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, or "" when none is set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time reports how long an operation took, tagged with the request id.
// Use as: defer obs.Time(ctx, "optimize route")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	entry := logrus.WithFields(logrus.Fields{
		"req_id": RequestID(ctx),
		"op":     name,
	})

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			entry.WithField("dur_ms", dur.Milliseconds()).WithError(*errp).Warn("operation failed")
			return
		}
		entry.WithField("dur_ms", dur.Milliseconds()).Debug("operation complete")
	}
}
