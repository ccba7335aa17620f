package delivery

import (
	"context"

	"encore.app/postal/business/metrics"
	"encore.app/postal/model"
	"encore.app/postal/repository/deliveries"
)

// CreateEndpoint is the path create-delivery telemetry is attributed to
const CreateEndpoint = "/v1/deliveries"

// Business executes the delivery operations the idempotency engine guards.
// The error return is reserved for infrastructure failures; a rejected
// operation is reported through a failed Result.
type Business interface {
	CreateDelivery(ctx context.Context, req *model.CreateDeliveryRequest) (*model.Result[model.Delivery], error)
	UpdateDeliveryStatus(ctx context.Context, operation, barcode string, statusID int32, endpoint string) (*model.Result[model.Shipment], error)
	LogIdempotentHit(ctx context.Context, barcode, key, endpoint string)
	GetShipmentAndDelivery(ctx context.Context, barcode string) (*model.Shipment, *model.Delivery, error)
}

type business struct {
	deliveryRepo deliveries.Querier
	metrics      metrics.Business
}

func NewDeliveryBusiness(deliveryRepo deliveries.Querier, metrics metrics.Business) Business {
	return &business{
		deliveryRepo: deliveryRepo,
		metrics:      metrics,
	}
}
