package idempotency

import (
	"context"
	"time"

	"encore.app/postal/model"
	"encore.app/postal/repository/entries"
)

// Business is the idempotency record store. Writes are best effort: a lost
// record weakens duplicate detection for one attempt but never blocks the
// business operation.
type Business interface {
	Create(ctx context.Context, entry *model.IdempotencyEntry) bool
	LatestByEndpoint(ctx context.Context, endpoint string) (*model.IdempotencyEntry, error)
	CacheResponse(ctx context.Context, key, endpoint string, response any, statusCode int)
	DeleteExpired(ctx context.Context) (int64, error)
}

// protectionGate is the part of the settings gate the store consults before
// caching a response.
type protectionGate interface {
	IsProtectionEnabled(ctx context.Context) bool
}

type business struct {
	entryRepo entries.Querier
	gate      protectionGate
	now       func() time.Time
}

func NewIdempotencyBusiness(entryRepo entries.Querier, gate protectionGate) Business {
	return &business{
		entryRepo: entryRepo,
		gate:      gate,
		now:       time.Now,
	}
}
