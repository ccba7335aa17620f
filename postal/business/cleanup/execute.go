package cleanup

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/model"
	"encore.app/postal/repository/deliveries"
	"encore.app/postal/repository/entries"
	"encore.app/postal/repository/opmetrics"
)

// Execute redeems token and deletes all idempotency entries, operation
// metrics and deliveries. Shipments are reference data and are kept.
func (b *business) Execute(ctx context.Context, token string) (*model.CleanupResult, error) {
	if err := b.redeem(ctx, token); err != nil {
		return nil, err
	}

	result, err := b.wiper.WipeAll(ctx)
	if err != nil {
		return nil, err
	}
	result.CompletedAt = b.now()

	rlog.Info("data cleanup completed",
		"idempotency_entries", result.IdempotencyEntries,
		"operation_metrics", result.OperationMetrics,
		"deliveries", result.Deliveries,
	)
	return result, nil
}

// TxWiper runs the deletes in one database transaction
type TxWiper struct {
	db *pgxpool.Pool
}

func NewTxWiper(db *pgxpool.Pool) *TxWiper {
	return &TxWiper{db: db}
}

func (w *TxWiper) WipeAll(ctx context.Context) (*model.CleanupResult, error) {
	tx, err := w.db.Begin(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	result, err := deleteAll(ctx, entries.New(tx), opmetrics.New(tx), deliveries.New(tx))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to commit cleanup"}
	}
	return result, nil
}

func deleteAll(ctx context.Context, entryRepo entries.Querier, metricRepo opmetrics.Querier, deliveryRepo deliveries.Querier) (*model.CleanupResult, error) {
	entryCount, err := entryRepo.DeleteAllEntries(ctx)
	if err != nil {
		rlog.Error("failed to delete idempotency entries", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete idempotency entries"}
	}

	metricCount, err := metricRepo.DeleteAllOperationMetrics(ctx)
	if err != nil {
		rlog.Error("failed to delete operation metrics", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete operation metrics"}
	}

	deliveryCount, err := deliveryRepo.DeleteAllDeliveries(ctx)
	if err != nil {
		rlog.Error("failed to delete deliveries", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete deliveries"}
	}

	return &model.CleanupResult{
		IdempotencyEntries: entryCount,
		OperationMetrics:   metricCount,
		Deliveries:         deliveryCount,
	}, nil
}
