package postal

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/postal/model"
)

type GetDeliveryResponse struct {
	Shipment *model.Shipment `json:"shipment"`
	Delivery *model.Delivery `json:"delivery"`
}

//encore:api public path=/v1/deliveries/:barcode method=GET
func (s *Service) GetDelivery(ctx context.Context, barcode string) (*GetDeliveryResponse, error) {
	if barcode == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "barcode is required"}
	}

	shipment, delivery, err := s.deliveries.GetShipmentAndDelivery(ctx, barcode)
	if err != nil {
		return nil, err
	}

	return &GetDeliveryResponse{
		Shipment: shipment,
		Delivery: delivery,
	}, nil
}
