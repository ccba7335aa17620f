package postal

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/model"
)

type CleanupTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CleanupPreviewResponse struct {
	Preview model.CleanupPreview `json:"preview"`
}

type ExecuteCleanupRequest struct {
	Token string `json:"token" validate:"required"`
}

type ExecuteCleanupResponse struct {
	Result model.CleanupResult `json:"result"`
}

// IssueCleanupToken returns a token that confirms one cleanup within five minutes
//
//encore:api public path=/v1/cleanup/token method=POST
func (s *Service) IssueCleanupToken(ctx context.Context) (*CleanupTokenResponse, error) {
	token, expiresAt, err := s.cleanup.IssueToken(ctx)
	if err != nil {
		return nil, err
	}
	return &CleanupTokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

//encore:api public path=/v1/cleanup/preview method=GET
func (s *Service) PreviewCleanup(ctx context.Context) (*CleanupPreviewResponse, error) {
	preview, err := s.cleanup.Preview(ctx)
	if err != nil {
		return nil, err
	}
	return &CleanupPreviewResponse{Preview: *preview}, nil
}

// ExecuteCleanup deletes idempotency entries, operation metrics and
// deliveries in one transaction.
//
//encore:api public path=/v1/cleanup/execute method=POST
func (s *Service) ExecuteCleanup(ctx context.Context, req *ExecuteCleanupRequest) (*ExecuteCleanupResponse, error) {
	result, err := s.cleanup.Execute(ctx, req.Token)
	if err != nil {
		rlog.Warn("cleanup rejected or failed", "error", err)
		return nil, err
	}
	return &ExecuteCleanupResponse{Result: *result}, nil
}

// Validate implements validation for ExecuteCleanupRequest using go-playground/validator
func (r *ExecuteCleanupRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
