package postal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/postal/business/orchestration"
	"encore.app/postal/mocks/business/orchestration_business"
	"encore.app/postal/model"
)

func TestUpdateDeliveryStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := orchestration_business.NewMockEngine(ctrl)
	service := &Service{engine: mockEngine}

	testCases := []struct {
		name          string
		barcode       string
		mockReturn    *model.Result[model.Shipment]
		mockError     error
		expectCall    bool
		expectedCode  errs.ErrCode
		expectData    bool
		expectMessage string
	}{
		{
			name:          "status_updated",
			barcode:       "RR123456789IL",
			mockReturn:    model.Succeeded(&model.Shipment{Barcode: "RR123456789IL", StatusID: 4}, "delivery status updated successfully").WithExecutionTime(5),
			expectCall:    true,
			expectData:    true,
			expectMessage: "delivery status updated successfully",
		},
		{
			name:          "duplicate_blocked",
			barcode:       "RR123456789IL",
			mockReturn:    &model.Result[model.Shipment]{Success: true, Message: orchestration.BlockedDuplicateMessage},
			expectCall:    true,
			expectMessage: orchestration.BlockedDuplicateMessage,
		},
		{
			name:         "missing_barcode",
			barcode:      "",
			expectedCode: errs.InvalidArgument,
		},
		{
			name:         "infrastructure_failure",
			barcode:      "RR123456789IL",
			mockError:    errors.New("deadlock"),
			expectCall:   true,
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectCall {
				mockEngine.EXPECT().
					ProcessUpdateStatus(gomock.Any(), tc.barcode, &model.UpdateDeliveryStatusRequest{StatusID: 4}, "key-1", "/v1/deliveries/"+tc.barcode+"/status").
					Return(tc.mockReturn, tc.mockError)
			}

			response, err := service.UpdateDeliveryStatus(context.Background(), tc.barcode, &UpdateDeliveryStatusRequest{
				IdempotencyKey: "key-1",
				StatusID:       4,
			})

			if tc.expectedCode != errs.OK {
				assert.Nil(t, response)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}

			require.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tc.expectMessage, response.Message)
			assert.Equal(t, tc.expectData, response.Data != nil)
		})
	}
}

func TestUpdateDeliveryStatusRequestValidation(t *testing.T) {
	assert.NoError(t, (&UpdateDeliveryStatusRequest{StatusID: 3}).Validate())
	assert.Equal(t, errs.InvalidArgument, errs.Code((&UpdateDeliveryStatusRequest{}).Validate()))
	assert.Equal(t, errs.InvalidArgument, errs.Code((&UpdateDeliveryStatusRequest{StatusID: -1}).Validate()))
}
