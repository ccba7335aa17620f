package settings

import (
	"context"
	"strconv"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/postal/model"
	"encore.app/postal/repository/systemsettings"
)

// GetChaosSettings returns the settings as stored, surfacing read errors to
// the caller instead of failing open.
func (b *business) GetChaosSettings(ctx context.Context) (*model.ChaosSettings, error) {
	values, err := b.load(ctx)
	if err != nil {
		rlog.Error("failed to load chaos settings", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load settings"}
	}

	return &model.ChaosSettings{
		UseIdempotencyKey:          parseProtectionEnabled(values),
		IdempotencyExpirationHours: parseExpirationHours(values),
	}, nil
}

// UpdateChaosSettings writes both keys in a single statement
func (b *business) UpdateChaosSettings(ctx context.Context, settings *model.ChaosSettings) error {
	if settings.IdempotencyExpirationHours <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "expiration hours must be positive"}
	}

	err := b.settingsRepo.UpsertSettings(ctx, systemsettings.UpsertSettingsParams{
		SettingKeys: []string{KeyUseIdempotency, KeyExpirationHours},
		SettingValues: []string{
			strconv.FormatBool(settings.UseIdempotencyKey),
			strconv.Itoa(settings.IdempotencyExpirationHours),
		},
	})
	if err != nil {
		rlog.Error("failed to update chaos settings", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to update settings"}
	}

	rlog.Info("chaos settings updated", "use_idempotency_key", settings.UseIdempotencyKey, "expiration_hours", settings.IdempotencyExpirationHours)
	return nil
}
