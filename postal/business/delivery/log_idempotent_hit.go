package delivery

import (
	"context"

	"encore.dev/rlog"

	"encore.app/postal/model"
)

// LogIdempotentHit records that a duplicate status update was blocked
func (b *business) LogIdempotentHit(ctx context.Context, barcode, key, endpoint string) {
	rlog.Debug("recording idempotent hit", "barcode", barcode, "key", key)

	b.metrics.Record(ctx, model.OperationMetric{
		OperationType:   model.OperationIdempotentBlock,
		Endpoint:        endpoint,
		IsIdempotentHit: true,
		IdempotencyKey:  &key,
	})
}
