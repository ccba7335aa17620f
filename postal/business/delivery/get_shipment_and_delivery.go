package delivery

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/postal/model"
)

// GetShipmentAndDelivery returns the shipment for barcode and its most recent
// delivery, which is nil when none has been recorded yet.
func (b *business) GetShipmentAndDelivery(ctx context.Context, barcode string) (*model.Shipment, *model.Delivery, error) {
	dbShipment, err := b.deliveryRepo.GetShipmentByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, &errs.Error{Code: errs.NotFound, Message: "shipment not found"}
		}
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to get shipment"}
	}

	dbDelivery, err := b.deliveryRepo.GetLatestDeliveryByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return convertDBShipmentToModel(dbShipment), nil, nil
		}
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to get delivery"}
	}

	return convertDBShipmentToModel(dbShipment), convertDBDeliveryToModel(dbDelivery), nil
}
