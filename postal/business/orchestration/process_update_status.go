package orchestration

import (
	"context"

	"encore.dev/rlog"

	"encore.app/postal/model"
)

func (e *engine) ProcessUpdateStatus(ctx context.Context, barcode string, req *model.UpdateDeliveryStatusRequest, key, path string) (*model.Result[model.Shipment], error) {
	logger := rlog.With("key", key, "endpoint", path, "barcode", barcode)
	logger.Info("processing status update", "state", StateInit, "status_id", req.StatusID)

	snapshot := withDefaults(e.settings.Snapshot(ctx))
	latest := e.lookup(ctx, logger, path)

	if !snapshot.ProtectionEnabled {
		return e.updateUnprotected(ctx, logger, snapshot, latest, barcode, req, key, path)
	}

	if latest.Matches(key, e.now()) && latest.HasCachedResponse() {
		logger.Warn("duplicate status update blocked", "state", StateReplay)
		e.deliveries.LogIdempotentHit(ctx, barcode, key, path)

		logger.Debug("status update done", "state", StateDone)
		return &model.Result[model.Shipment]{Success: true, Data: nil, Message: BlockedDuplicateMessage}, nil
	}

	entry := e.newEntry(ctx, logger, snapshot, req, key, path, "PATCH", model.OperationUpdateStatus, 0)
	entry.RelatedEntityID = &barcode
	e.track(ctx, logger, entry)

	logger.Info("executing status update", "state", StateExecuteFresh)
	result, err := e.deliveries.UpdateDeliveryStatus(ctx, model.OperationUpdateStatus, barcode, req.StatusID, path)
	if err != nil {
		logger.Error("status update failed", "error", err)
		return nil, err
	}

	e.records.CacheResponse(ctx, key, path, result, statusCodeFor(result.Success))
	if !result.Success {
		logger.Warn("status update rejected", "state", StateRecorded, "message", result.Message)
	} else {
		logger.Info("status update recorded", "state", StateRecorded)
	}

	logger.Debug("status update done", "state", StateDone)
	return result, nil
}

// updateUnprotected always executes. The duplicate path tracks after the
// update and the fresh path tracks before it.
func (e *engine) updateUnprotected(ctx context.Context, logger rlog.Ctx, snapshot model.SettingsSnapshot, latest *model.IdempotencyEntry, barcode string, req *model.UpdateDeliveryStatusRequest, key, path string) (*model.Result[model.Shipment], error) {
	trackingEntry := func() *model.IdempotencyEntry {
		entry := e.newEntry(ctx, logger, snapshot, req, key, path, "PATCH", model.OperationUpdateStatusUnprotected, 200)
		entry.RelatedEntityID = &barcode
		return entry
	}

	if latest != nil && latest.IdempotencyKey == key {
		logger.Warn("duplicate status update while protection is disabled, executing anyway", "state", StateExecuteFlagged)
		result, err := e.deliveries.UpdateDeliveryStatus(ctx, model.OperationUpdateStatusDisabledDuplicate, barcode, req.StatusID, path)
		if err != nil {
			logger.Error("status update failed", "error", err)
			return nil, err
		}

		e.track(ctx, logger, trackingEntry())
		logger.Info("unprotected status update recorded", "state", StateRecorded, "duplicate", true)

		logger.Debug("status update done", "state", StateDone)
		return result, nil
	}

	e.track(ctx, logger, trackingEntry())

	logger.Info("executing status update without protection", "state", StateExecuteFresh)
	result, err := e.deliveries.UpdateDeliveryStatus(ctx, model.OperationUpdateStatusDisabledFresh, barcode, req.StatusID, path)
	if err != nil {
		logger.Error("status update failed", "error", err)
		return nil, err
	}
	logger.Info("unprotected status update recorded", "state", StateRecorded, "duplicate", false)

	logger.Debug("status update done", "state", StateDone)
	return result, nil
}
