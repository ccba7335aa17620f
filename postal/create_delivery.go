package postal

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/business/delivery"
	"encore.app/postal/model"
	"encore.app/postal/reqctx"
)

type CreateDeliveryRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	CorrelationID  string `header:"X-Correlation-ID" json:"-"`

	Barcode        string   `json:"barcode" validate:"required,max=50"`
	EmployeeID     string   `json:"employee_id" validate:"required,max=50"`
	LocationLat    *float64 `json:"location_lat,omitempty" validate:"omitempty,latitude"`
	LocationLng    *float64 `json:"location_lng,omitempty" validate:"omitempty,longitude"`
	RecipientName  *string  `json:"recipient_name,omitempty" validate:"omitempty,max=100"`
	DeliveryStatus int32    `json:"delivery_status" validate:"required,min=1"`
	Notes          *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type DeliveryResponse struct {
	CorrelationID string `header:"X-Correlation-ID" json:"-"`

	Success         bool            `json:"success"`
	Data            *model.Delivery `json:"data"`
	Message         string          `json:"message,omitempty"`
	ExecutionTimeMs *int64          `json:"execution_time_ms,omitempty"`
}

// CreateDelivery records a delivery. Repeating a request with the same
// X-Idempotency-Key replays the first response while protection is enabled.
//
//encore:api public path=/v1/deliveries method=POST tag:idempotency
func (s *Service) CreateDelivery(ctx context.Context, req *CreateDeliveryRequest) (*DeliveryResponse, error) {
	ctx = reqctx.WithCorrelationID(ctx, req.CorrelationID)

	result, err := s.engine.ProcessCreate(ctx, &model.CreateDeliveryRequest{
		Barcode:        req.Barcode,
		EmployeeID:     req.EmployeeID,
		LocationLat:    req.LocationLat,
		LocationLng:    req.LocationLng,
		RecipientName:  req.RecipientName,
		DeliveryStatus: req.DeliveryStatus,
		Notes:          req.Notes,
	}, req.IdempotencyKey, delivery.CreateEndpoint)
	if err != nil {
		rlog.Error("failed to create delivery", "error", err, "barcode", req.Barcode)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create delivery"}
	}

	return &DeliveryResponse{
		Success:         result.Success,
		Data:            result.Data,
		Message:         result.Message,
		ExecutionTimeMs: result.ExecutionTimeMs,
		CorrelationID:   correlationIDOf(ctx),
	}, nil
}

// Validate implements validation for CreateDeliveryRequest using go-playground/validator
func (r *CreateDeliveryRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// correlationIDOf returns the correlation id to echo back to the caller
func correlationIDOf(ctx context.Context) string {
	if id := reqctx.CorrelationID(ctx); id != nil {
		return *id
	}
	return ""
}
