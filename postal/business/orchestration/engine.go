package orchestration

import (
	"context"
	"time"

	"encore.dev/rlog"

	"encore.app/postal/business/delivery"
	"encore.app/postal/business/idempotency"
	"encore.app/postal/business/metrics"
	"encore.app/postal/business/settings"
	"encore.app/postal/hashing"
	"encore.app/postal/model"
	"encore.app/postal/reqctx"
)

// State names a step of a single attempt. Every transition is logged under
// the "state" field.
type State string

const (
	StateInit           State = "INIT"
	StateLookup         State = "LOOKUP"
	StateExecuteFresh   State = "EXECUTE_FRESH"
	StateReplay         State = "REPLAY"
	StateExecuteFlagged State = "EXECUTE_FLAGGED"
	StateRecorded       State = "RECORDED"
	StateDone           State = "DONE"
)

const (
	BlockedDuplicateMessage    = "update blocked by idempotency key, status not changed"
	CachedResponseErrorMessage = "failed to read cached response"
)

// Engine decides per request whether to execute, replay or execute-and-flag.
// Both entry points only return an error when the executor hits an
// infrastructure failure.
type Engine interface {
	ProcessCreate(ctx context.Context, req *model.CreateDeliveryRequest, key, path string) (*model.Result[model.Delivery], error)
	ProcessUpdateStatus(ctx context.Context, barcode string, req *model.UpdateDeliveryStatusRequest, key, path string) (*model.Result[model.Shipment], error)
}

type engine struct {
	records    idempotency.Business
	settings   settings.Business
	deliveries delivery.Business
	metrics    metrics.Business
	now        func() time.Time
}

func NewEngine(
	records idempotency.Business,
	settingsGate settings.Business,
	deliveries delivery.Business,
	telemetry metrics.Business,
) Engine {
	return &engine{
		records:    records,
		settings:   settingsGate,
		deliveries: deliveries,
		metrics:    telemetry,
		now:        time.Now,
	}
}

// lookup returns the latest entry for path. A store failure reads as "no
// entry" so the request proceeds unprotected instead of failing.
func (e *engine) lookup(ctx context.Context, logger rlog.Ctx, path string) *model.IdempotencyEntry {
	logger.Debug("looking up latest entry", "state", StateLookup)

	latest, err := e.records.LatestByEndpoint(ctx, path)
	if err != nil {
		logger.Error("failed to look up idempotency entry, proceeding without it", "error", err)
		return nil
	}
	return latest
}

// newEntry builds the record of one attempt. The request hash is best
// effort; an unhashable request is still tracked.
func (e *engine) newEntry(ctx context.Context, logger rlog.Ctx, snapshot model.SettingsSnapshot, req any, key, path, method, operation string, statusCode int) *model.IdempotencyEntry {
	requestHash, err := hashing.HashJSON(req)
	if err != nil {
		logger.Warn("failed to hash request", "error", err)
	}

	now := e.now()
	return &model.IdempotencyEntry{
		IdempotencyKey: key,
		RequestHash:    requestHash,
		Endpoint:       path,
		HTTPMethod:     method,
		Operation:      operation,
		StatusCode:     statusCode,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Duration(snapshot.ExpirationHours) * time.Hour),
		CorrelationID:  reqctx.CorrelationID(ctx),
	}
}

func (e *engine) track(ctx context.Context, logger rlog.Ctx, entry *model.IdempotencyEntry) {
	if !e.records.Create(ctx, entry) {
		logger.Warn("tracking entry not stored, continuing", "operation", entry.Operation)
	}
}

func statusCodeFor(success bool) int {
	if success {
		return 200
	}
	return 422
}

// withDefaults guards against a snapshot that did not come from the gate
func withDefaults(snapshot model.SettingsSnapshot) model.SettingsSnapshot {
	if snapshot.ExpirationHours <= 0 {
		snapshot.ExpirationHours = model.DefaultExpirationHours
	}
	return snapshot
}
