package requestlog

import (
	"time"

	"github.com/google/uuid"

	"encore.dev/middleware"
	"encore.dev/rlog"

	"encore.app/postal/reqctx"
)

const CorrelationHeader = "X-Correlation-ID"

// LogRequest logs method, path, latency and correlation id of every call.
// The correlation id, generated when the caller sent none, is handed to the
// handler through the request context.
//
//encore:middleware target=all
func LogRequest(req middleware.Request, next middleware.Next) middleware.Response {
	data := req.Data()
	correlationID := correlationIDOf(req)
	req = req.WithContext(reqctx.WithCorrelationID(req.Context(), correlationID))

	start := time.Now()
	resp := next(req)
	latency := time.Since(start)

	logger := rlog.With(
		"method", data.Method,
		"path", data.Path,
		"correlation_id", correlationID,
		"latency_ms", latency.Milliseconds(),
	)
	if resp.Err != nil {
		logger.Warn("request failed", "error", resp.Err)
	} else {
		logger.Debug("request completed")
	}

	return resp
}

// correlationIDOf returns the caller's correlation id, or a fresh one
func correlationIDOf(req middleware.Request) string {
	if headers := req.Data().Headers; headers != nil {
		if id := headers.Get(CorrelationHeader); id != "" {
			return id
		}
	}
	return uuid.NewString()
}
