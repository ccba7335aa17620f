package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/postal/mocks/business/metrics_business"
	"encore.app/postal/mocks/repository/delivery_repo"
	"encore.app/postal/model"
	"encore.app/postal/repository/deliveries"
)

func TestUpdateDeliveryStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := delivery_repo.NewMockQuerier(ctrl)
	mockMetrics := metrics_business.NewMockBusiness(ctrl)
	business := NewDeliveryBusiness(mockRepo, mockMetrics)

	const endpoint = "/v1/deliveries/RR123456789IL/status"

	testCases := []struct {
		name            string
		operation       string
		mockError       error
		expectSuccess   bool
		expectedMessage string
		expectedError   bool
		expectIsError   bool
	}{
		{
			name:            "protected_update",
			operation:       model.OperationUpdateStatus,
			expectSuccess:   true,
			expectedMessage: statusUpdatedMessage,
		},
		{
			name:            "fresh_update_while_disabled",
			operation:       model.OperationUpdateStatusDisabledFresh,
			expectSuccess:   true,
			expectedMessage: statusUpdatedMessage,
		},
		{
			name:            "duplicate_update_while_disabled_is_flagged",
			operation:       model.OperationUpdateStatusDisabledDuplicate,
			expectSuccess:   true,
			expectedMessage: statusUpdatedMessage,
			expectIsError:   true,
		},
		{
			name:            "chaos_operation_is_flagged",
			operation:       model.OperationUpdateStatusChaosError,
			expectSuccess:   true,
			expectedMessage: statusUpdatedMessage,
			expectIsError:   true,
		},
		{
			name:            "unknown_barcode",
			operation:       model.OperationUpdateStatus,
			mockError:       pgx.ErrNoRows,
			expectSuccess:   false,
			expectedMessage: "Shipment with barcode RR123456789IL not found.",
		},
		{
			name:          "database_failure",
			operation:     model.OperationUpdateStatus,
			mockError:     errors.New("deadlock detected"),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var dbShipment deliveries.Shipment
			if tc.mockError == nil {
				dbShipment = deliveries.Shipment{
					ID:           1,
					Barcode:      "RR123456789IL",
					CustomerName: pgtype.Text{String: "Avi Cohen", Valid: true},
					StatusID:     4,
				}
			}
			mockRepo.EXPECT().
				UpdateShipmentStatus(gomock.Any(), deliveries.UpdateShipmentStatusParams{Barcode: "RR123456789IL", StatusID: 4}).
				Return(dbShipment, tc.mockError)

			if !tc.expectedError {
				mockMetrics.EXPECT().
					Record(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, metric model.OperationMetric) {
						assert.Equal(t, tc.operation, metric.OperationType)
						assert.Equal(t, endpoint, metric.Endpoint)
						assert.Equal(t, tc.expectIsError, metric.IsError)
					})
			}

			result, err := business.UpdateDeliveryStatus(context.Background(), tc.operation, "RR123456789IL", 4, endpoint)

			if tc.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tc.expectSuccess, result.Success)
			assert.Equal(t, tc.expectedMessage, result.Message)
			if tc.expectSuccess {
				require.NotNil(t, result.Data)
				assert.Equal(t, int32(4), result.Data.StatusID)
				require.NotNil(t, result.Data.CustomerName)
				assert.Equal(t, "Avi Cohen", *result.Data.CustomerName)
				assert.NotNil(t, result.ExecutionTimeMs)
			} else {
				assert.Nil(t, result.Data)
			}
		})
	}
}

func TestLogIdempotentHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetrics := metrics_business.NewMockBusiness(ctrl)
	business := NewDeliveryBusiness(delivery_repo.NewMockQuerier(ctrl), mockMetrics)

	mockMetrics.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, metric model.OperationMetric) {
			assert.Equal(t, model.OperationIdempotentBlock, metric.OperationType)
			assert.True(t, metric.IsIdempotentHit)
			assert.False(t, metric.IsError)
			assert.Zero(t, metric.ElapsedMs)
			require.NotNil(t, metric.IdempotencyKey)
			assert.Equal(t, "key-1", *metric.IdempotencyKey)
		})

	business.LogIdempotentHit(context.Background(), "RR123456789IL", "key-1", "/v1/deliveries/RR123456789IL/status")
}
