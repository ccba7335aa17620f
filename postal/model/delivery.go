package model

import (
	"time"

	"github.com/google/uuid"
)

type Delivery struct {
	ID            uuid.UUID `json:"id"`
	Barcode       string    `json:"barcode"`
	EmployeeID    string    `json:"employee_id"`
	DeliveryDate  time.Time `json:"delivery_date"`
	LocationLat   *float64  `json:"location_lat,omitempty"`
	LocationLng   *float64  `json:"location_lng,omitempty"`
	RecipientName *string   `json:"recipient_name,omitempty"`
	StatusID      int32     `json:"status_id"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type Shipment struct {
	ID           int32     `json:"id"`
	Barcode      string    `json:"barcode"`
	CustomerName *string   `json:"customer_name,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Weight       *float64  `json:"weight,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	StatusID     int32     `json:"status_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateDeliveryRequest is the body of a create-delivery call. It is also
// the payload fingerprinted into IdempotencyEntry.RequestHash.
type CreateDeliveryRequest struct {
	Barcode        string   `json:"barcode" validate:"required,max=50"`
	EmployeeID     string   `json:"employee_id" validate:"required,max=50"`
	LocationLat    *float64 `json:"location_lat,omitempty" validate:"omitempty,latitude"`
	LocationLng    *float64 `json:"location_lng,omitempty" validate:"omitempty,longitude"`
	RecipientName  *string  `json:"recipient_name,omitempty" validate:"omitempty,max=100"`
	DeliveryStatus int32    `json:"delivery_status" validate:"required,min=1"`
	Notes          *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateDeliveryStatusRequest struct {
	StatusID int32 `json:"status_id" validate:"required,min=1"`
}
