package metrics

import (
	"context"
	"time"

	"encore.app/postal/model"
	"encore.app/postal/repository/opmetrics"
)

// Counter keys kept in the realtime keyspace
const (
	CounterTotal            = "total_operations"
	CounterIdempotentHits   = "idempotent_hits"
	CounterChaosErrors      = "chaos_errors"
	CounterLastResponseTime = "last_response_time_ms"
)

const (
	HealthHealthy  = "healthy"
	HealthDegraded = "degraded"
)

// Business is the telemetry sink. Record never blocks or fails the caller.
type Business interface {
	Record(ctx context.Context, metric model.OperationMetric)
	Summary(ctx context.Context) (*model.MetricsSummary, error)
	RealTime(ctx context.Context) (*model.RealTimeMetrics, error)
	Reset(ctx context.Context) error
}

// Counters is the subset of an Encore IntKeyspace used for realtime counters
type Counters interface {
	Get(ctx context.Context, key string) (int64, error)
	Set(ctx context.Context, key string, val int64) error
	Increment(ctx context.Context, key string, delta int64) (int64, error)
	Delete(ctx context.Context, keys ...string) (int, error)
}

type business struct {
	metricRepo opmetrics.Querier
	counters   Counters
	runAsync   func(op string, fn func(ctx context.Context) error)
	now        func() time.Time
}

func NewMetricsBusiness(metricRepo opmetrics.Querier, counters Counters) Business {
	return &business{
		metricRepo: metricRepo,
		counters:   counters,
		runAsync:   safeAsync,
		now:        time.Now,
	}
}
