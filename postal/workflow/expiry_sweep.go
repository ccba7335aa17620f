package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// ExpirySweepWorkflowID is fixed so only one cron schedule exists per namespace
const ExpirySweepWorkflowID = "idempotency-expiry-sweep"

// ExpirySweepResult is returned by every sweep run
type ExpirySweepResult struct {
	Deleted int64     `json:"deleted"`
	SweptAt time.Time `json:"swept_at"`
}

// ExpirySweep deletes expired idempotency entries. It is started with a cron
// schedule, so each run is a single pass.
func ExpirySweep(ctx workflow.Context) (ExpirySweepResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting expiry sweep")

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var deleted int64
	if err := workflow.ExecuteActivity(activityCtx, DeleteExpiredEntriesActivity).Get(ctx, &deleted); err != nil {
		logger.Error("Expiry sweep failed", "error", err)
		return ExpirySweepResult{}, err
	}

	result := ExpirySweepResult{Deleted: deleted, SweptAt: workflow.Now(ctx)}
	logger.Info("Expiry sweep completed", "deleted", deleted)
	return result, nil
}
