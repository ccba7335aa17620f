package settings

import (
	"context"

	"encore.app/postal/model"
	"encore.app/postal/repository/systemsettings"
)

const (
	KeyUseIdempotency  = "UseIdempotencyKey"
	KeyExpirationHours = "IdempotencyExpirationHours"
)

type Business interface {
	// Snapshot reads both protection settings in one round trip.
	Snapshot(ctx context.Context) model.SettingsSnapshot
	IsProtectionEnabled(ctx context.Context) bool
	ExpirationHours(ctx context.Context) int

	GetChaosSettings(ctx context.Context) (*model.ChaosSettings, error)
	UpdateChaosSettings(ctx context.Context, settings *model.ChaosSettings) error
}

// business is the settings gate. It reads through to the settings table on
// every call and never caches.
type business struct {
	settingsRepo systemsettings.Querier
}

func NewSettingsBusiness(settingsRepo systemsettings.Querier) Business {
	return &business{
		settingsRepo: settingsRepo,
	}
}
