package idempotency

import (
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
)

const (
	IdempotencyHeader = "X-Idempotency-Key"
	maxKeyLength      = 255
)

// RequireIdempotencyKey rejects mutating calls that carry no usable key.
// Duplicate detection itself happens in the orchestration engine.
//
//encore:middleware target=tag:idempotency
func RequireIdempotencyKey(req middleware.Request, next middleware.Next) middleware.Response {
	if _, err := extractIdempotencyKey(req); err != nil {
		rlog.Warn("rejected request without idempotency key", "path", req.Data().Path, "error", err.Message)
		return middleware.Response{Err: err}
	}
	return next(req)
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}

	if len(idempotencyKey) == 0 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	if len(idempotencyKey) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is too long"}
	}

	return idempotencyKey, nil
}
