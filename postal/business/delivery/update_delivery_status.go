package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/rlog"

	"encore.app/postal/model"
	"encore.app/postal/repository/deliveries"
)

const statusUpdatedMessage = "delivery status updated successfully"

// flaggedOperations are executed on purpose while protection is off and
// always count as errors in telemetry.
var flaggedOperations = map[string]bool{
	model.OperationUpdateStatusDisabledDuplicate: true,
	model.OperationUpdateStatusChaosError:        true,
}

// UpdateDeliveryStatus sets the status of the shipment identified by
// barcode and records the outcome under operation.
func (b *business) UpdateDeliveryStatus(ctx context.Context, operation, barcode string, statusID int32, endpoint string) (*model.Result[model.Shipment], error) {
	isError := flaggedOperations[operation]

	start := time.Now()
	dbShipment, err := b.deliveryRepo.UpdateShipmentStatus(ctx, deliveries.UpdateShipmentStatusParams{
		Barcode:  barcode,
		StatusID: statusID,
	})
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		var e *pgconn.PgError
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			b.record(ctx, operation, endpoint, elapsed, isError)
			return model.Failed[model.Shipment](fmt.Sprintf("Shipment with barcode %s not found.", barcode)), nil
		case errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation:
			b.record(ctx, operation, endpoint, elapsed, isError)
			return model.Failed[model.Shipment](invalidStatusMessage), nil
		}

		rlog.Error("failed to update shipment status", "error", err, "barcode", barcode, "status_id", statusID)
		return nil, err
	}

	b.record(ctx, operation, endpoint, elapsed, isError)

	return model.Succeeded(convertDBShipmentToModel(dbShipment), statusUpdatedMessage).WithExecutionTime(elapsed), nil
}

func convertDBShipmentToModel(dbShipment deliveries.Shipment) *model.Shipment {
	shipment := &model.Shipment{
		ID:        dbShipment.ID,
		Barcode:   dbShipment.Barcode,
		StatusID:  dbShipment.StatusID,
		CreatedAt: dbShipment.CreatedAt.Time,
		UpdatedAt: dbShipment.UpdatedAt.Time,
	}

	if dbShipment.CustomerName.Valid {
		shipment.CustomerName = &dbShipment.CustomerName.String
	}
	if dbShipment.Address.Valid {
		shipment.Address = &dbShipment.Address.String
	}
	if dbShipment.Weight.Valid {
		shipment.Weight = &dbShipment.Weight.Float64
	}
	if dbShipment.Price.Valid {
		shipment.Price = &dbShipment.Price.Float64
	}

	return shipment
}
