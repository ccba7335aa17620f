package metrics

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/postal/model"
)

// Summary aggregates every recorded operation metric
func (b *business) Summary(ctx context.Context) (*model.MetricsSummary, error) {
	row, err := b.metricRepo.GetMetricsSummary(ctx)
	if err != nil {
		rlog.Error("failed to load metrics summary", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load metrics summary"}
	}

	summary := &model.MetricsSummary{
		TotalOperations:        row.TotalOperations,
		SuccessfulOperations:   row.SuccessfulOperations,
		IdempotentHits:         row.IdempotentHits,
		ErrorCount:             row.ErrorCount,
		AverageExecutionTimeMs: row.AverageExecutionTimeMs,
	}
	if row.TotalOperations > 0 {
		summary.SuccessRate = float64(row.SuccessfulOperations+row.IdempotentHits) / float64(row.TotalOperations) * 100
	}

	return summary, nil
}

// RealTime reads the cache counters. Missing counters read as zero.
func (b *business) RealTime(ctx context.Context) (*model.RealTimeMetrics, error) {
	values := make(map[string]int64, 4)
	for _, key := range []string{CounterTotal, CounterIdempotentHits, CounterChaosErrors, CounterLastResponseTime} {
		val, err := b.counters.Get(ctx, key)
		if err != nil && !errors.Is(err, cache.Miss) {
			rlog.Error("failed to read realtime counter", "error", err, "key", key)
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to read realtime metrics"}
		}
		values[key] = val
	}

	metrics := &model.RealTimeMetrics{
		TotalOperations:  values[CounterTotal],
		IdempotentHits:   values[CounterIdempotentHits],
		ChaosErrors:      values[CounterChaosErrors],
		LastResponseTime: values[CounterLastResponseTime],
		HealthStatus:     HealthHealthy,
		CollectedAt:      b.now(),
	}
	if metrics.ChaosErrors > 0 {
		metrics.HealthStatus = HealthDegraded
	}

	return metrics, nil
}

// Reset clears the realtime counters. Persisted metrics are kept; they are
// removed by the data cleanup flow.
func (b *business) Reset(ctx context.Context) error {
	_, err := b.counters.Delete(ctx, CounterTotal, CounterIdempotentHits, CounterChaosErrors, CounterLastResponseTime)
	if err != nil {
		rlog.Error("failed to reset realtime counters", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to reset metrics"}
	}

	rlog.Info("realtime metrics reset")
	return nil
}
