package cleanup

import (
	"context"
	"time"

	"encore.app/postal/model"
	"encore.app/postal/repository/deliveries"
	"encore.app/postal/repository/entries"
	"encore.app/postal/repository/opmetrics"
)

// TokenTTL is how long a confirmation token can be redeemed
const TokenTTL = 5 * time.Minute

// Business wipes demo data after an explicit, single-use confirmation
type Business interface {
	IssueToken(ctx context.Context) (string, time.Time, error)
	Preview(ctx context.Context) (*model.CleanupPreview, error)
	Execute(ctx context.Context, token string) (*model.CleanupResult, error)
}

// TokenStore is the subset of an Encore StructKeyspace holding issued tokens.
// The keyspace expiry enforces TokenTTL.
type TokenStore interface {
	Set(ctx context.Context, key string, val model.CleanupToken) error
	Delete(ctx context.Context, keys ...string) (int, error)
}

// Wiper removes every row of the cleanable tables as one unit
type Wiper interface {
	WipeAll(ctx context.Context) (*model.CleanupResult, error)
}

type business struct {
	entryRepo    entries.Querier
	metricRepo   opmetrics.Querier
	deliveryRepo deliveries.Querier
	tokens       TokenStore
	wiper        Wiper
	now          func() time.Time
}

func NewCleanupBusiness(
	entryRepo entries.Querier,
	metricRepo opmetrics.Querier,
	deliveryRepo deliveries.Querier,
	tokens TokenStore,
	wiper Wiper,
) Business {
	return &business{
		entryRepo:    entryRepo,
		metricRepo:   metricRepo,
		deliveryRepo: deliveryRepo,
		tokens:       tokens,
		wiper:        wiper,
		now:          time.Now,
	}
}
