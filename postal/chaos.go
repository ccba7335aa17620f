package postal

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/model"
)

type ChaosSettingsRequest struct {
	UseIdempotencyKey          bool `json:"use_idempotency_key"`
	IdempotencyExpirationHours int  `json:"idempotency_expiration_hours" validate:"required,min=1,max=8760"`
}

type ChaosSettingsResponse struct {
	Settings model.ChaosSettings `json:"settings"`
}

// GetChaosSettings returns whether idempotency protection is on and how long
// entries stay valid.
//
//encore:api public path=/v1/chaos/settings method=GET
func (s *Service) GetChaosSettings(ctx context.Context) (*ChaosSettingsResponse, error) {
	settings, err := s.settings.GetChaosSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &ChaosSettingsResponse{Settings: *settings}, nil
}

// UpdateChaosSettings switches idempotency protection on or off. Both values
// are written together.
//
//encore:api public path=/v1/chaos/settings method=POST
func (s *Service) UpdateChaosSettings(ctx context.Context, req *ChaosSettingsRequest) (*ChaosSettingsResponse, error) {
	settings := &model.ChaosSettings{
		UseIdempotencyKey:          req.UseIdempotencyKey,
		IdempotencyExpirationHours: req.IdempotencyExpirationHours,
	}

	if err := s.settings.UpdateChaosSettings(ctx, settings); err != nil {
		return nil, err
	}

	rlog.Info("chaos settings updated", "use_idempotency_key", settings.UseIdempotencyKey, "expiration_hours", settings.IdempotencyExpirationHours)
	return &ChaosSettingsResponse{Settings: *settings}, nil
}

// Validate implements validation for ChaosSettingsRequest using go-playground/validator
func (r *ChaosSettingsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
