package postal

import (
	"context"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/postal/business/cleanup"
	"encore.app/postal/business/delivery"
	"encore.app/postal/business/idempotency"
	"encore.app/postal/business/metrics"
	"encore.app/postal/business/orchestration"
	"encore.app/postal/business/settings"
	"encore.app/postal/repository"
	"encore.app/postal/workflow"
)

var postalDB = sqldb.NewDatabase("postal", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	engine     orchestration.Engine
	deliveries delivery.Business
	settings   settings.Business
	records    idempotency.Business
	metrics    metrics.Business
	cleanup    cleanup.Business

	// temporal is nil when the Temporal server could not be reached at startup
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(postalDB)

	rlog.Info("initializing repository")
	repo := repository.NewRepository(pgxdb)

	settingsBusiness := settings.NewSettingsBusiness(repo.Settings)
	recordsBusiness := idempotency.NewIdempotencyBusiness(repo.Entries, settingsBusiness)
	metricsBusiness := metrics.NewMetricsBusiness(repo.Metrics, realtimeCounters)
	deliveryBusiness := delivery.NewDeliveryBusiness(repo.Deliveries, metricsBusiness)
	cleanupBusiness := cleanup.NewCleanupBusiness(repo.Entries, repo.Metrics, repo.Deliveries, cleanupTokens, cleanup.NewTxWiper(pgxdb))

	s := &Service{
		engine:     orchestration.NewEngine(recordsBusiness, settingsBusiness, deliveryBusiness, metricsBusiness),
		deliveries: deliveryBusiness,
		settings:   settingsBusiness,
		records:    recordsBusiness,
		metrics:    metricsBusiness,
		cleanup:    cleanupBusiness,
	}

	s.startTemporal(recordsBusiness)

	return s, nil
}

// startTemporal connects to Temporal, runs the sweep worker and schedules the
// cron sweep. Without Temporal the service still serves requests and the
// manual sweep endpoint deletes expired entries directly.
func (s *Service) startTemporal(records idempotency.Business) {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort(),
		Namespace: cfg.Temporal.Namespace(),
	})
	if err != nil {
		rlog.Error("failed to connect to temporal, expiry sweep disabled", "error", err, "host_port", cfg.Temporal.HostPort())
		return
	}

	workflow.SetActivityDependencies(records)

	w := worker.New(c, cfg.Temporal.TaskQueue(), worker.Options{})
	w.RegisterWorkflow(workflow.ExpirySweep)
	w.RegisterActivity(workflow.DeleteExpiredEntriesActivity)
	if err := w.Start(); err != nil {
		rlog.Error("failed to start temporal worker", "error", err)
		c.Close()
		return
	}

	s.temporal = c
	s.worker = w

	if cfg.Sweep.Enabled() {
		if err := s.scheduleExpirySweep(context.Background()); err != nil {
			rlog.Error("failed to schedule expiry sweep", "error", err)
		}
	}
}

// Shutdown stops the worker before closing the client it polls with
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
