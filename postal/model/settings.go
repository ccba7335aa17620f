package model

const DefaultExpirationHours = 24

// SettingsSnapshot is the protection configuration observed by a single request
type SettingsSnapshot struct {
	ProtectionEnabled bool
	ExpirationHours   int
}

// DefaultSettings is the fail-open snapshot used when settings cannot be read
func DefaultSettings() SettingsSnapshot {
	return SettingsSnapshot{
		ProtectionEnabled: true,
		ExpirationHours:   DefaultExpirationHours,
	}
}

type ChaosSettings struct {
	UseIdempotencyKey          bool `json:"use_idempotency_key"`
	IdempotencyExpirationHours int  `json:"idempotency_expiration_hours" validate:"required,min=1,max=8760"`
}
