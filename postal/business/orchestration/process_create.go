package orchestration

import (
	"context"
	"encoding/json"

	"encore.dev/rlog"

	"encore.app/postal/model"
)

func (e *engine) ProcessCreate(ctx context.Context, req *model.CreateDeliveryRequest, key, path string) (*model.Result[model.Delivery], error) {
	logger := rlog.With("key", key, "endpoint", path, "barcode", req.Barcode)
	logger.Info("processing create delivery", "state", StateInit)

	snapshot := withDefaults(e.settings.Snapshot(ctx))
	latest := e.lookup(ctx, logger, path)

	if !snapshot.ProtectionEnabled {
		return e.createUnprotected(ctx, logger, snapshot, latest, req, key, path)
	}

	if latest.Matches(key, e.now()) && latest.HasCachedResponse() {
		return e.replayCreate(ctx, logger, latest, key, path), nil
	}

	entry := e.newEntry(ctx, logger, snapshot, req, key, path, "POST", model.OperationCreateDelivery, 0)
	e.track(ctx, logger, entry)

	logger.Info("executing create delivery", "state", StateExecuteFresh)
	result, err := e.deliveries.CreateDelivery(ctx, req)
	if err != nil {
		logger.Error("create delivery failed", "error", err)
		return nil, err
	}

	e.records.CacheResponse(ctx, key, path, result, statusCodeFor(result.Success))
	logger.Info("create delivery recorded", "state", StateRecorded, "success", result.Success)

	logger.Debug("create delivery done", "state", StateDone)
	return result, nil
}

// createUnprotected always executes. A repeated key is flagged in telemetry;
// a new key leaves a tracking entry for the next comparison.
func (e *engine) createUnprotected(ctx context.Context, logger rlog.Ctx, snapshot model.SettingsSnapshot, latest *model.IdempotencyEntry, req *model.CreateDeliveryRequest, key, path string) (*model.Result[model.Delivery], error) {
	isDuplicate := latest != nil && latest.IdempotencyKey == key

	state := StateExecuteFresh
	if isDuplicate {
		state = StateExecuteFlagged
		logger.Warn("duplicate create while protection is disabled, executing anyway")
	}

	logger.Info("executing create delivery without protection", "state", state)
	result, err := e.deliveries.CreateDelivery(ctx, req)
	if err != nil {
		logger.Error("create delivery failed", "error", err)
		return nil, err
	}

	if isDuplicate {
		e.metrics.Record(ctx, model.OperationMetric{
			OperationType:  model.OperationCreateDeliveryChaosError,
			Endpoint:       path,
			IdempotencyKey: &key,
			IsError:        true,
		})
	} else {
		e.track(ctx, logger, e.newEntry(ctx, logger, snapshot, req, key, path, "POST", model.OperationCreateDeliveryUnprotected, 200))
	}
	logger.Info("unprotected create recorded", "state", StateRecorded, "duplicate", isDuplicate)

	logger.Debug("create delivery done", "state", StateDone)
	return result, nil
}

func (e *engine) replayCreate(ctx context.Context, logger rlog.Ctx, latest *model.IdempotencyEntry, key, path string) *model.Result[model.Delivery] {
	logger.Info("duplicate create, replaying cached response", "state", StateReplay)

	var cached model.Result[model.Delivery]
	if err := json.Unmarshal(latest.ResponseData, &cached); err != nil {
		logger.Error("failed to decode cached response", "error", err, "entry_id", latest.ID)
		return model.Failed[model.Delivery](CachedResponseErrorMessage)
	}

	e.metrics.Record(ctx, model.OperationMetric{
		OperationType:   model.OperationCreateDeliveryReplay,
		Endpoint:        path,
		IsIdempotentHit: true,
		IdempotencyKey:  &key,
	})

	logger.Debug("create delivery done", "state", StateDone)
	return &cached
}
