package cleanup

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/model"
)

// IssueToken creates a confirmation token that Execute accepts once
func (b *business) IssueToken(ctx context.Context) (string, time.Time, error) {
	token := uuid.NewString()
	issuedAt := b.now()

	if err := b.tokens.Set(ctx, token, model.CleanupToken{IssuedAt: issuedAt}); err != nil {
		rlog.Error("failed to store cleanup token", "error", err)
		return "", time.Time{}, &errs.Error{Code: errs.Internal, Message: "failed to issue cleanup token"}
	}

	rlog.Info("cleanup token issued", "expires_at", issuedAt.Add(TokenTTL))
	return token, issuedAt.Add(TokenTTL), nil
}

// redeem consumes token. Deleting is the check, so a token cannot be used twice.
func (b *business) redeem(ctx context.Context, token string) error {
	if token == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "confirmation token is required"}
	}

	deleted, err := b.tokens.Delete(ctx, token)
	if err != nil {
		rlog.Error("failed to redeem cleanup token", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to verify cleanup token"}
	}
	if deleted == 0 {
		return &errs.Error{Code: errs.PermissionDenied, Message: "invalid or expired confirmation token"}
	}
	return nil
}
