package model

import "time"

// OperationMetric is one telemetry record of an operation outcome
type OperationMetric struct {
	OperationType   string
	Endpoint        string
	ElapsedMs       int64
	IsIdempotentHit bool
	IdempotencyKey  *string
	IsError         bool
}

type MetricsSummary struct {
	TotalOperations        int64   `json:"total_operations"`
	SuccessfulOperations   int64   `json:"successful_operations"`
	IdempotentHits         int64   `json:"idempotent_hits"`
	ErrorCount             int64   `json:"error_count"`
	AverageExecutionTimeMs float64 `json:"average_execution_time_ms"`
	SuccessRate            float64 `json:"success_rate"`
}

type RealTimeMetrics struct {
	TotalOperations  int64     `json:"total_operations"`
	IdempotentHits   int64     `json:"idempotent_hits"`
	ChaosErrors      int64     `json:"chaos_errors"`
	LastResponseTime int64     `json:"last_response_time_ms"`
	HealthStatus     string    `json:"health_status"`
	CollectedAt      time.Time `json:"collected_at"`
}
