package model

import "time"

type CleanupPreview struct {
	IdempotencyEntries int64 `json:"idempotency_entries"`
	OperationMetrics   int64 `json:"operation_metrics"`
	Deliveries         int64 `json:"deliveries"`
}

type CleanupResult struct {
	IdempotencyEntries int64     `json:"idempotency_entries"`
	OperationMetrics   int64     `json:"operation_metrics"`
	Deliveries         int64     `json:"deliveries"`
	CompletedAt        time.Time `json:"completed_at"`
}

// CleanupToken is stored in the cache while a confirmation token is valid
type CleanupToken struct {
	IssuedAt time.Time `json:"issued_at"`
}
