package postal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/postal/mocks/business/cleanup_business"
	"encore.app/postal/model"
)

func TestCleanupEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCleanup := cleanup_business.NewMockBusiness(ctrl)
	service := &Service{cleanup: mockCleanup}

	expiresAt := time.Date(2026, 9, 1, 12, 5, 0, 0, time.UTC)

	t.Run("issue_token", func(t *testing.T) {
		mockCleanup.EXPECT().IssueToken(gomock.Any()).Return("token-1", expiresAt, nil)

		response, err := service.IssueCleanupToken(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "token-1", response.Token)
		assert.Equal(t, expiresAt, response.ExpiresAt)
	})

	t.Run("preview", func(t *testing.T) {
		mockCleanup.EXPECT().Preview(gomock.Any()).Return(&model.CleanupPreview{IdempotencyEntries: 3, OperationMetrics: 8, Deliveries: 1}, nil)

		response, err := service.PreviewCleanup(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(8), response.Preview.OperationMetrics)
	})

	t.Run("execute", func(t *testing.T) {
		mockCleanup.EXPECT().Execute(gomock.Any(), "token-1").Return(&model.CleanupResult{IdempotencyEntries: 3, CompletedAt: expiresAt}, nil)

		response, err := service.ExecuteCleanup(context.Background(), &ExecuteCleanupRequest{Token: "token-1"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), response.Result.IdempotencyEntries)
	})

	t.Run("execute_with_redeemed_token", func(t *testing.T) {
		mockCleanup.EXPECT().
			Execute(gomock.Any(), "token-1").
			Return(nil, &errs.Error{Code: errs.PermissionDenied, Message: "invalid or expired confirmation token"})

		response, err := service.ExecuteCleanup(context.Background(), &ExecuteCleanupRequest{Token: "token-1"})

		assert.Nil(t, response)
		assert.Equal(t, errs.PermissionDenied, errs.Code(err))
	})
}

func TestExecuteCleanupRequestValidation(t *testing.T) {
	assert.NoError(t, (&ExecuteCleanupRequest{Token: "t"}).Validate())
	assert.Equal(t, errs.InvalidArgument, errs.Code((&ExecuteCleanupRequest{}).Validate()))
}
