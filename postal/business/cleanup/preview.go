package cleanup

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/model"
)

// Preview counts the rows Execute would delete
func (b *business) Preview(ctx context.Context) (*model.CleanupPreview, error) {
	entryCount, err := b.entryRepo.CountEntries(ctx)
	if err != nil {
		rlog.Error("failed to count idempotency entries", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to build cleanup preview"}
	}

	metricCount, err := b.metricRepo.CountOperationMetrics(ctx)
	if err != nil {
		rlog.Error("failed to count operation metrics", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to build cleanup preview"}
	}

	deliveryCount, err := b.deliveryRepo.CountDeliveries(ctx)
	if err != nil {
		rlog.Error("failed to count deliveries", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to build cleanup preview"}
	}

	return &model.CleanupPreview{
		IdempotencyEntries: entryCount,
		OperationMetrics:   metricCount,
		Deliveries:         deliveryCount,
	}, nil
}
