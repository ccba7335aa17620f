package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// IdempotencyEntry is one accepted attempt of a mutating request
type IdempotencyEntry struct {
	ID              uuid.UUID       `json:"id"`
	IdempotencyKey  string          `json:"idempotency_key"`
	RequestHash     string          `json:"request_hash"`
	Endpoint        string          `json:"endpoint"`
	HTTPMethod      string          `json:"http_method"`
	Operation       string          `json:"operation"`
	StatusCode      int             `json:"status_code"`
	ResponseData    json.RawMessage `json:"response_data,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
	RelatedEntityID *string         `json:"related_entity_id,omitempty"`
	CorrelationID   *string         `json:"correlation_id,omitempty"`
}

// Matches reports whether the entry was recorded for key and is still valid at now.
func (e *IdempotencyEntry) Matches(key string, now time.Time) bool {
	return e != nil && e.IdempotencyKey == key && e.ExpiresAt.After(now)
}

// HasCachedResponse reports whether the response of the attempt was stored.
func (e *IdempotencyEntry) HasCachedResponse() bool {
	return e != nil && len(e.ResponseData) > 0
}
