package postal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/workflow"
)

type SweepResponse struct {
	Deleted int64     `json:"deleted"`
	SweptAt time.Time `json:"swept_at"`
}

// SweepExpiredEntries deletes expired idempotency entries now instead of
// waiting for the scheduled sweep.
//
//encore:api public path=/v1/idempotency/sweep method=POST
func (s *Service) SweepExpiredEntries(ctx context.Context) (*SweepResponse, error) {
	if s.temporal == nil {
		deleted, err := s.records.DeleteExpired(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to sweep expired entries"}
		}
		return &SweepResponse{Deleted: deleted, SweptAt: time.Now()}, nil
	}

	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("%s-manual-%s", workflow.ExpirySweepWorkflowID, uuid.NewString()),
		TaskQueue: cfg.Temporal.TaskQueue(),
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ExpirySweep)
	if err != nil {
		rlog.Error("failed to start manual sweep", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to start expiry sweep"}
	}

	var result workflow.ExpirySweepResult
	if err := run.Get(ctx, &result); err != nil {
		rlog.Error("manual sweep failed", "error", err, "workflow_id", options.ID)
		return nil, &errs.Error{Code: errs.Internal, Message: "expiry sweep failed"}
	}

	return &SweepResponse{Deleted: result.Deleted, SweptAt: result.SweptAt}, nil
}

// scheduleExpirySweep starts the cron workflow. An already running schedule
// is left untouched.
func (s *Service) scheduleExpirySweep(ctx context.Context) error {
	options := client.StartWorkflowOptions{
		ID:           workflow.ExpirySweepWorkflowID,
		TaskQueue:    cfg.Temporal.TaskQueue(),
		CronSchedule: cfg.Sweep.CronSchedule(),
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ExpirySweep)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("expiry sweep already scheduled", "workflow_id", options.ID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", options.ID, err)
	}

	rlog.Info("expiry sweep scheduled", "workflow_id", options.ID, "cron", options.CronSchedule)
	return nil
}
