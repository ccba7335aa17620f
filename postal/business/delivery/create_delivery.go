package delivery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"encore.app/postal/model"
	"encore.app/postal/repository/deliveries"
)

const invalidStatusMessage = "invalid delivery status"

// CreateDelivery inserts a new delivery row. Every call creates a row; the
// engine decides whether a call happens at all.
func (b *business) CreateDelivery(ctx context.Context, req *model.CreateDeliveryRequest) (*model.Result[model.Delivery], error) {
	start := time.Now()

	dbDelivery, err := b.deliveryRepo.CreateDelivery(ctx, deliveries.CreateDeliveryParams{
		ID:            pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Barcode:       req.Barcode,
		EmployeeID:    req.EmployeeID,
		DeliveryDate:  pgtype.Timestamptz{Time: start, Valid: true},
		LocationLat:   optionalFloat(req.LocationLat),
		LocationLng:   optionalFloat(req.LocationLng),
		RecipientName: optionalText(req.RecipientName),
		StatusID:      req.DeliveryStatus,
		Notes:         optionalText(req.Notes),
	})
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			b.record(ctx, model.OperationCreateDelivery, CreateEndpoint, elapsed, false)
			return model.Failed[model.Delivery](invalidStatusMessage), nil
		}

		rlog.Error("failed to create delivery", "error", err, "barcode", req.Barcode)
		return nil, err
	}

	b.record(ctx, model.OperationCreateDelivery, CreateEndpoint, elapsed, false)

	return model.Succeeded(convertDBDeliveryToModel(dbDelivery), ""), nil
}

func (b *business) record(ctx context.Context, operation, endpoint string, elapsedMs int64, isError bool) {
	b.metrics.Record(ctx, model.OperationMetric{
		OperationType: operation,
		Endpoint:      endpoint,
		ElapsedMs:     elapsedMs,
		IsError:       isError,
	})
}

func convertDBDeliveryToModel(dbDelivery deliveries.Delivery) *model.Delivery {
	delivery := &model.Delivery{
		ID:           uuid.UUID(dbDelivery.ID.Bytes),
		Barcode:      dbDelivery.Barcode,
		EmployeeID:   dbDelivery.EmployeeID,
		DeliveryDate: dbDelivery.DeliveryDate.Time,
		StatusID:     dbDelivery.StatusID,
		CreatedAt:    dbDelivery.CreatedAt.Time,
	}

	if dbDelivery.LocationLat.Valid {
		delivery.LocationLat = &dbDelivery.LocationLat.Float64
	}
	if dbDelivery.LocationLng.Valid {
		delivery.LocationLng = &dbDelivery.LocationLng.Float64
	}
	if dbDelivery.RecipientName.Valid {
		delivery.RecipientName = &dbDelivery.RecipientName.String
	}
	if dbDelivery.Notes.Valid {
		delivery.Notes = &dbDelivery.Notes.String
	}

	return delivery
}

func optionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func optionalFloat(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}
