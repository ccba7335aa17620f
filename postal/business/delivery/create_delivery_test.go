package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/postal/mocks/business/metrics_business"
	"encore.app/postal/mocks/repository/delivery_repo"
	"encore.app/postal/model"
	"encore.app/postal/repository/deliveries"
)

func TestCreateDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := delivery_repo.NewMockQuerier(ctrl)
	mockMetrics := metrics_business.NewMockBusiness(ctrl)
	business := NewDeliveryBusiness(mockRepo, mockMetrics)

	recipient := "Dana Levi"
	lat := 32.0853
	created := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name            string
		req             *model.CreateDeliveryRequest
		mockError       error
		expectSuccess   bool
		expectedMessage string
		expectedError   bool
		expectMetric    bool
	}{
		{
			name: "happy_case",
			req: &model.CreateDeliveryRequest{
				Barcode:        "RR123456789IL",
				EmployeeID:     "EMP001",
				LocationLat:    &lat,
				RecipientName:  &recipient,
				DeliveryStatus: 4,
			},
			expectSuccess: true,
			expectMetric:  true,
		},
		{
			name: "unknown_status_is_a_failed_result",
			req: &model.CreateDeliveryRequest{
				Barcode:        "RR123456789IL",
				EmployeeID:     "EMP001",
				DeliveryStatus: 99,
			},
			mockError:       &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			expectSuccess:   false,
			expectedMessage: "invalid delivery status",
			expectMetric:    true,
		},
		{
			name: "database_failure_is_returned",
			req: &model.CreateDeliveryRequest{
				Barcode:        "RR123456789IL",
				EmployeeID:     "EMP001",
				DeliveryStatus: 4,
			},
			mockError:     errors.New("connection refused"),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo.EXPECT().
				CreateDelivery(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg deliveries.CreateDeliveryParams) (deliveries.Delivery, error) {
					assert.True(t, arg.ID.Valid)
					assert.Equal(t, tc.req.Barcode, arg.Barcode)
					assert.Equal(t, tc.req.DeliveryStatus, arg.StatusID)
					assert.Equal(t, tc.req.LocationLat != nil, arg.LocationLat.Valid)
					assert.False(t, arg.LocationLng.Valid)
					if tc.mockError != nil {
						return deliveries.Delivery{}, tc.mockError
					}
					return deliveries.Delivery{
						ID:            arg.ID,
						Barcode:       arg.Barcode,
						EmployeeID:    arg.EmployeeID,
						DeliveryDate:  arg.DeliveryDate,
						LocationLat:   arg.LocationLat,
						RecipientName: arg.RecipientName,
						StatusID:      arg.StatusID,
						CreatedAt:     pgtype.Timestamptz{Time: created, Valid: true},
					}, nil
				})

			if tc.expectMetric {
				mockMetrics.EXPECT().
					Record(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, metric model.OperationMetric) {
						assert.Equal(t, model.OperationCreateDelivery, metric.OperationType)
						assert.Equal(t, CreateEndpoint, metric.Endpoint)
						assert.False(t, metric.IsError)
						assert.False(t, metric.IsIdempotentHit)
					})
			}

			result, err := business.CreateDelivery(context.Background(), tc.req)

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
				assert.NotEqual(t, uuid.Nil, result.Data.ID)
				assert.Equal(t, tc.req.Barcode, result.Data.Barcode)
				assert.Equal(t, created, result.Data.CreatedAt)
				require.NotNil(t, result.Data.RecipientName)
				assert.Equal(t, recipient, *result.Data.RecipientName)
				assert.Nil(t, result.Data.LocationLng)
			} else {
				assert.Nil(t, result.Data)
			}
		})
	}
}
