package model

// Operation tags written to idempotency entries and operation metrics
const (
	OperationCreateDelivery            = "create_delivery"
	OperationCreateDeliveryUnprotected = "create_delivery_unprotected"
	OperationCreateDeliveryChaosError  = "create_delivery_chaos_error"
	OperationCreateDeliveryReplay      = "create_delivery_replay"

	OperationUpdateStatus                  = "update_status"
	OperationUpdateStatusUnprotected       = "update_status_unprotected"
	OperationUpdateStatusDisabledDuplicate = "update_status_Idempotency_disabled"
	OperationUpdateStatusDisabledFresh     = "update_status_Idempotency_disabled_F"
	OperationUpdateStatusChaosError        = "update_status_chaos_error"

	OperationIdempotentBlock = "idempotent_block"
)
