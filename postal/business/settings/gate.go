package settings

import (
	"context"
	"strconv"
	"strings"

	"encore.dev/rlog"

	"encore.app/postal/model"
)

// Snapshot fails open: an unreachable store or a malformed value yields
// protection enabled with the default expiration window.
func (b *business) Snapshot(ctx context.Context) model.SettingsSnapshot {
	values, err := b.load(ctx)
	if err != nil {
		rlog.Error("failed to read settings, using safe defaults", "error", err)
		return model.DefaultSettings()
	}

	return model.SettingsSnapshot{
		ProtectionEnabled: parseProtectionEnabled(values),
		ExpirationHours:   parseExpirationHours(values),
	}
}

func (b *business) IsProtectionEnabled(ctx context.Context) bool {
	values, err := b.load(ctx)
	if err != nil {
		rlog.Error("failed to read protection setting, assuming enabled", "error", err)
		return true
	}
	return parseProtectionEnabled(values)
}

func (b *business) ExpirationHours(ctx context.Context) int {
	values, err := b.load(ctx)
	if err != nil {
		rlog.Error("failed to read expiration setting, using default", "error", err, "hours", model.DefaultExpirationHours)
		return model.DefaultExpirationHours
	}
	return parseExpirationHours(values)
}

func (b *business) load(ctx context.Context) (map[string]string, error) {
	rows, err := b.settingsRepo.ListSettings(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.SettingKey] = row.SettingValue
	}
	return values, nil
}

func parseProtectionEnabled(values map[string]string) bool {
	raw, ok := values[KeyUseIdempotency]
	if !ok {
		rlog.Warn("protection setting missing, assuming enabled", "key", KeyUseIdempotency)
		return true
	}

	enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		rlog.Warn("protection setting malformed, assuming enabled", "key", KeyUseIdempotency, "value", raw)
		return true
	}
	return enabled
}

func parseExpirationHours(values map[string]string) int {
	raw, ok := values[KeyExpirationHours]
	if !ok {
		return model.DefaultExpirationHours
	}

	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || hours <= 0 {
		rlog.Warn("expiration setting invalid, using default", "key", KeyExpirationHours, "value", raw)
		return model.DefaultExpirationHours
	}
	return hours
}
