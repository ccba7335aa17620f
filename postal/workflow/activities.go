package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/postal/business/idempotency"
)

// ActivityDependencies holds what the sweep activities need from the service
type ActivityDependencies struct {
	Records idempotency.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(records idempotency.Business) {
	activityDeps = &ActivityDependencies{
		Records: records,
	}
}

// DeleteExpiredEntriesActivity removes idempotency entries past their expiry
func DeleteExpiredEntriesActivity(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing expiry sweep activity")

	if activityDeps == nil || activityDeps.Records == nil {
		logger.Error("Activity dependencies not set")
		return 0, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	deleted, err := activityDeps.Records.DeleteExpired(ctx)
	if err != nil {
		logger.Error("Failed to delete expired entries", "error", err)
		return 0, err
	}

	logger.Info("Expiry sweep activity finished", "deleted", deleted)
	return deleted, nil
}
