package postal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/postal/mocks/business/idempotency_business"
	"encore.app/postal/workflow"
)

func TestSweepExpiredEntries_WithoutTemporal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := idempotency_business.NewMockBusiness(ctrl)
	service := &Service{records: mockRecords}

	mockRecords.EXPECT().DeleteExpired(gomock.Any()).Return(int64(4), nil)

	response, err := service.SweepExpiredEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), response.Deleted)

	mockRecords.EXPECT().DeleteExpired(gomock.Any()).Return(int64(0), errors.New("lock timeout"))

	response, err = service.SweepExpiredEntries(context.Background())
	assert.Nil(t, response)
	assert.Equal(t, errs.Internal, errs.Code(err))
}

func TestSweepExpiredEntries_ThroughWorkflow(t *testing.T) {
	mockTemporal := mocks.NewClient(t)
	mockRun := mocks.NewWorkflowRun(t)
	service := &Service{temporal: mockTemporal}

	sweptAt := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)

	mockTemporal.On("ExecuteWorkflow",
		mock.Anything,
		mock.MatchedBy(func(options client.StartWorkflowOptions) bool {
			return options.CronSchedule == "" && len(options.ID) > len(workflow.ExpirySweepWorkflowID)
		}),
		mock.Anything,
	).Return(mockRun, nil).Once()
	mockRun.On("Get", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			result := args.Get(1).(*workflow.ExpirySweepResult)
			result.Deleted = 9
			result.SweptAt = sweptAt
		}).
		Return(nil).Once()

	response, err := service.SweepExpiredEntries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(9), response.Deleted)
	assert.Equal(t, sweptAt, response.SweptAt)
}

func TestSweepExpiredEntries_WorkflowStartFails(t *testing.T) {
	mockTemporal := mocks.NewClient(t)
	service := &Service{temporal: mockTemporal}

	mockTemporal.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("temporal unavailable")).Once()

	response, err := service.SweepExpiredEntries(context.Background())

	assert.Nil(t, response)
	assert.Equal(t, errs.Internal, errs.Code(err))
}
