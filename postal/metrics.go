package postal

import (
	"context"
	"time"

	"encore.app/postal/model"
)

type MetricsSummaryResponse struct {
	Summary model.MetricsSummary `json:"summary"`
}

type RealTimeMetricsResponse struct {
	Metrics model.RealTimeMetrics `json:"metrics"`
}

type ResetMetricsResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ResponseTimeStats struct {
	CurrentMs int64   `json:"current_ms"`
	AverageMs float64 `json:"average_ms"`
}

type OperationStats struct {
	Total            int64   `json:"total"`
	Successful       int64   `json:"successful"`
	IdempotentBlocks int64   `json:"idempotent_blocks"`
	ChaosErrors      int64   `json:"chaos_errors"`
	SuccessRate      float64 `json:"success_rate"`
}

type HealthResponse struct {
	Status       string            `json:"status"`
	ResponseTime ResponseTimeStats `json:"response_time"`
	Operations   OperationStats    `json:"operations"`
	Timestamp    time.Time         `json:"timestamp"`
}

//encore:api public path=/v1/metrics/summary method=GET
func (s *Service) GetMetricsSummary(ctx context.Context) (*MetricsSummaryResponse, error) {
	summary, err := s.metrics.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &MetricsSummaryResponse{Summary: *summary}, nil
}

//encore:api public path=/v1/metrics/realtime method=GET
func (s *Service) GetRealTimeMetrics(ctx context.Context) (*RealTimeMetricsResponse, error) {
	metrics, err := s.metrics.RealTime(ctx)
	if err != nil {
		return nil, err
	}
	return &RealTimeMetricsResponse{Metrics: *metrics}, nil
}

// ResetMetrics clears the realtime counters
//
//encore:api public path=/v1/metrics/reset method=POST
func (s *Service) ResetMetrics(ctx context.Context) (*ResetMetricsResponse, error) {
	if err := s.metrics.Reset(ctx); err != nil {
		return nil, err
	}
	return &ResetMetricsResponse{Message: "metrics reset successfully", Timestamp: time.Now()}, nil
}

// GetHealth combines the persisted summary with the realtime counters
//
//encore:api public path=/v1/metrics/health method=GET
func (s *Service) GetHealth(ctx context.Context) (*HealthResponse, error) {
	summary, err := s.metrics.Summary(ctx)
	if err != nil {
		return nil, err
	}
	realtime, err := s.metrics.RealTime(ctx)
	if err != nil {
		return nil, err
	}

	return &HealthResponse{
		Status: realtime.HealthStatus,
		ResponseTime: ResponseTimeStats{
			CurrentMs: realtime.LastResponseTime,
			AverageMs: summary.AverageExecutionTimeMs,
		},
		Operations: OperationStats{
			Total:            summary.TotalOperations,
			Successful:       summary.SuccessfulOperations,
			IdempotentBlocks: summary.IdempotentHits,
			ChaosErrors:      realtime.ChaosErrors,
			SuccessRate:      summary.SuccessRate,
		},
		Timestamp: realtime.CollectedAt,
	}, nil
}
