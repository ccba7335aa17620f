package orchestration

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"encore.app/postal/model"
)

// memRecords is an in-memory record store with one slot per endpoint, like
// the idempotency_entries table. Every Create is also kept in written so
// tests can inspect what the engine stored.
type memRecords struct {
	mu      sync.Mutex
	slots   map[string]*model.IdempotencyEntry
	written []*model.IdempotencyEntry
	sweepAt time.Time
}

func (m *memRecords) Create(_ context.Context, entry *model.IdempotencyEntry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.slots == nil {
		m.slots = make(map[string]*model.IdempotencyEntry)
	}
	copied := *entry
	m.slots[entry.Endpoint] = &copied
	m.written = append(m.written, &copied)
	return true
}

func (m *memRecords) LatestByEndpoint(_ context.Context, endpoint string) (*model.IdempotencyEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.slots[endpoint]
	if !ok {
		return nil, nil
	}
	copied := *entry
	return &copied, nil
}

func (m *memRecords) CacheResponse(_ context.Context, key, endpoint string, response any, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, err := json.Marshal(response)
	if err != nil {
		return
	}
	entry, ok := m.slots[endpoint]
	if ok && entry.IdempotencyKey == key && entry.ResponseData == nil {
		entry.ResponseData = body
		entry.StatusCode = statusCode
	}
}

func (m *memRecords) DeleteExpired(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at := m.sweepAt
	if at.IsZero() {
		at = fixedNow
	}
	var deleted int64
	for endpoint, entry := range m.slots {
		if !entry.ExpiresAt.After(at) {
			delete(m.slots, endpoint)
			deleted++
		}
	}
	return deleted, nil
}

func (m *memRecords) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.written)
}

func (m *memRecords) last() *model.IdempotencyEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.written) == 0 {
		return nil
	}
	return m.written[len(m.written)-1]
}

var fixedNow = time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC)

func enabledSnapshot() model.SettingsSnapshot {
	return model.SettingsSnapshot{ProtectionEnabled: true, ExpirationHours: 24}
}

func disabledSnapshot() model.SettingsSnapshot {
	return model.SettingsSnapshot{ProtectionEnabled: false, ExpirationHours: 24}
}
