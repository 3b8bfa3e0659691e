package logger

// Package logger configures structured diagnostics logging and carries a
// per-invocation search id through context so pipeline log lines correlate.

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

// SearchIDKey is the context key under which the search invocation id travels.
const SearchIDKey ctxKey = "searchId"

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}

// For returns a log entry bound to the search id found in ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	id, ok := ctx.Value(SearchIDKey).(string)
	if !ok {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("search_id", id)
}

// ID extracts the search id from ctx, if present.
func ID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SearchIDKey).(string)
	return id, ok
}

// ContextWithID returns a child context carrying the given search id.
func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SearchIDKey, id)
}

// Track logs the elapsed time of an operation when the returned func runs.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())

		if dur > 2*time.Second {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
