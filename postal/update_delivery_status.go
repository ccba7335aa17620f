package postal

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/model"
	"encore.app/postal/reqctx"
)

type UpdateDeliveryStatusRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	CorrelationID  string `header:"X-Correlation-ID" json:"-"`

	StatusID int32 `json:"status_id" validate:"required,min=1"`
}

type ShipmentResponse struct {
	CorrelationID string `header:"X-Correlation-ID" json:"-"`

	Success         bool            `json:"success"`
	Data            *model.Shipment `json:"data"`
	Message         string          `json:"message,omitempty"`
	ExecutionTimeMs *int64          `json:"execution_time_ms,omitempty"`
}

// UpdateDeliveryStatus changes a shipment's status. A repeated request with
// the same X-Idempotency-Key is acknowledged without changing anything.
//
//encore:api public path=/v1/deliveries/:barcode/status method=PATCH tag:idempotency
func (s *Service) UpdateDeliveryStatus(ctx context.Context, barcode string, req *UpdateDeliveryStatusRequest) (*ShipmentResponse, error) {
	if barcode == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "barcode is required"}
	}
	ctx = reqctx.WithCorrelationID(ctx, req.CorrelationID)

	path := fmt.Sprintf("/v1/deliveries/%s/status", barcode)
	result, err := s.engine.ProcessUpdateStatus(ctx, barcode, &model.UpdateDeliveryStatusRequest{
		StatusID: req.StatusID,
	}, req.IdempotencyKey, path)
	if err != nil {
		rlog.Error("failed to update delivery status", "error", err, "barcode", barcode)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update delivery status"}
	}

	return &ShipmentResponse{
		Success:         result.Success,
		Data:            result.Data,
		Message:         result.Message,
		ExecutionTimeMs: result.ExecutionTimeMs,
		CorrelationID:   correlationIDOf(ctx),
	}, nil
}

// Validate implements validation for UpdateDeliveryStatusRequest using go-playground/validator
func (r *UpdateDeliveryStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
