package postal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/postal/mocks/business/orchestration_business"
	"encore.app/postal/model"
	"encore.app/postal/reqctx"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

func TestCreateDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := orchestration_business.NewMockEngine(ctrl)
	service := &Service{engine: mockEngine}

	deliveryID := uuid.New()

	testCases := []struct {
		name            string
		request         *CreateDeliveryRequest
		mockReturn      *model.Result[model.Delivery]
		mockError       error
		expectedError   string
		expectSuccess   bool
		expectedMessage string
	}{
		{
			name: "successful_creation",
			request: &CreateDeliveryRequest{
				IdempotencyKey: "key-1",
				CorrelationID:  "corr-1",
				Barcode:        "RR123456789IL",
				EmployeeID:     "EMP001",
				DeliveryStatus: 4,
			},
			mockReturn:    model.Succeeded(&model.Delivery{ID: deliveryID, Barcode: "RR123456789IL", StatusID: 4}, ""),
			expectSuccess: true,
		},
		{
			name: "business_failure_is_a_normal_response",
			request: &CreateDeliveryRequest{
				IdempotencyKey: "key-2",
				Barcode:        "RR123456789IL",
				EmployeeID:     "EMP001",
				DeliveryStatus: 99,
			},
			mockReturn:      model.Failed[model.Delivery]("invalid delivery status"),
			expectSuccess:   false,
			expectedMessage: "invalid delivery status",
		},
		{
			name: "infrastructure_failure",
			request: &CreateDeliveryRequest{
				IdempotencyKey: "key-3",
				Barcode:        "RR123456789IL",
				EmployeeID:     "EMP001",
				DeliveryStatus: 4,
			},
			mockError:     errors.New("connection refused"),
			expectedError: "failed to create delivery",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockEngine.EXPECT().
				ProcessCreate(gomock.Any(), gomock.Any(), tc.request.IdempotencyKey, "/v1/deliveries").
				DoAndReturn(func(ctx context.Context, req *model.CreateDeliveryRequest, key, path string) (*model.Result[model.Delivery], error) {
					assert.Equal(t, tc.request.Barcode, req.Barcode)
					assert.Equal(t, tc.request.DeliveryStatus, req.DeliveryStatus)
					if tc.request.CorrelationID != "" {
						require.NotNil(t, reqctx.CorrelationID(ctx))
						assert.Equal(t, tc.request.CorrelationID, *reqctx.CorrelationID(ctx))
					}
					return tc.mockReturn, tc.mockError
				})

			response, err := service.CreateDelivery(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Nil(t, response)
				assert.Equal(t, errs.Internal, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectSuccess, response.Success)
			assert.Equal(t, tc.expectedMessage, response.Message)
			assert.Equal(t, tc.request.CorrelationID, response.CorrelationID)
			if tc.expectSuccess {
				require.NotNil(t, response.Data)
				assert.Equal(t, deliveryID, response.Data.ID)
			}
		})
	}
}

func TestCreateDeliveryEchoesContextCorrelationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := orchestration_business.NewMockEngine(ctrl)
	service := &Service{engine: mockEngine}

	mockEngine.EXPECT().
		ProcessCreate(gomock.Any(), gomock.Any(), "key-1", "/v1/deliveries").
		DoAndReturn(func(ctx context.Context, req *model.CreateDeliveryRequest, key, path string) (*model.Result[model.Delivery], error) {
			require.NotNil(t, reqctx.CorrelationID(ctx))
			assert.Equal(t, "generated-1", *reqctx.CorrelationID(ctx))
			return model.Succeeded(&model.Delivery{Barcode: req.Barcode}, ""), nil
		})

	ctx := reqctx.WithCorrelationID(context.Background(), "generated-1")
	response, err := service.CreateDelivery(ctx, &CreateDeliveryRequest{
		IdempotencyKey: "key-1",
		Barcode:        "RR123456789IL",
		EmployeeID:     "EMP001",
		DeliveryStatus: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, "generated-1", response.CorrelationID)
}

func TestCreateDeliveryRequestValidation(t *testing.T) {
	lat := 91.0

	testCases := []struct {
		name        string
		request     *CreateDeliveryRequest
		expectValid bool
	}{
		{
			name:        "valid",
			request:     &CreateDeliveryRequest{Barcode: "RR1", EmployeeID: "EMP001", DeliveryStatus: 1},
			expectValid: true,
		},
		{
			name:    "missing_barcode",
			request: &CreateDeliveryRequest{EmployeeID: "EMP001", DeliveryStatus: 1},
		},
		{
			name:    "missing_status",
			request: &CreateDeliveryRequest{Barcode: "RR1", EmployeeID: "EMP001"},
		},
		{
			name:    "latitude_out_of_range",
			request: &CreateDeliveryRequest{Barcode: "RR1", EmployeeID: "EMP001", DeliveryStatus: 1, LocationLat: &lat},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectValid {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			}
		})
	}
}
