package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/postal/repository/deliveries"
	"encore.app/postal/repository/entries"
	"encore.app/postal/repository/opmetrics"
	"encore.app/postal/repository/systemsettings"
)

// Repository combines all table-specific queriers
type Repository struct {
	Entries    entries.Querier
	Deliveries deliveries.Querier
	Settings   systemsettings.Querier
	Metrics    opmetrics.Querier
}

// NewRepository creates a new Repository with all queriers bound to the pool
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Entries:    entries.New(db),
		Deliveries: deliveries.New(db),
		Settings:   systemsettings.New(db),
		Metrics:    opmetrics.New(db),
	}
}
