package metrics

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"encore.app/postal/model"
	"encore.app/postal/repository/opmetrics"
)

// Record persists metric and bumps the realtime counters in the background
func (b *business) Record(_ context.Context, metric model.OperationMetric) {
	b.runAsync("record_metric", func(ctx context.Context) error {
		var errList []error

		err := b.metricRepo.InsertOperationMetric(ctx, opmetrics.InsertOperationMetricParams{
			OperationType:   metric.OperationType,
			Endpoint:        metric.Endpoint,
			ExecutionTimeMs: clampMs(metric.ElapsedMs),
			IsIdempotentHit: metric.IsIdempotentHit,
			IdempotencyKey:  optionalText(metric.IdempotencyKey),
			IsError:         metric.IsError,
		})
		if err != nil {
			errList = append(errList, err)
		}

		if b.counters != nil {
			errList = append(errList, b.bumpCounters(ctx, metric)...)
		}

		if len(errList) > 0 {
			return errors.Join(errList...)
		}

		rlog.Debug("operation metric recorded", "operation", metric.OperationType, "endpoint", metric.Endpoint, "is_error", metric.IsError)
		return nil
	})
}

func (b *business) bumpCounters(ctx context.Context, metric model.OperationMetric) []error {
	var errList []error

	if _, err := b.counters.Increment(ctx, CounterTotal, 1); err != nil {
		errList = append(errList, err)
	}
	if metric.IsIdempotentHit {
		if _, err := b.counters.Increment(ctx, CounterIdempotentHits, 1); err != nil {
			errList = append(errList, err)
		}
	}
	if metric.IsError {
		if _, err := b.counters.Increment(ctx, CounterChaosErrors, 1); err != nil {
			errList = append(errList, err)
		}
	}
	// untimed records, such as a flagged duplicate create, keep the last latency
	if !metric.IsIdempotentHit && metric.ElapsedMs > 0 {
		if err := b.counters.Set(ctx, CounterLastResponseTime, metric.ElapsedMs); err != nil {
			errList = append(errList, err)
		}
	}

	return errList
}

func clampMs(ms int64) int32 {
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	if ms < 0 {
		return 0
	}
	return int32(ms)
}

func optionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
