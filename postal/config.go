package postal

import "encore.dev/config"

type TemporalConfig struct {
	HostPort  config.String
	Namespace config.String
	TaskQueue config.String
}

type SweepConfig struct {
	Enabled      config.Bool
	CronSchedule config.String
}

type Config struct {
	Temporal TemporalConfig
	Sweep    SweepConfig
}

var cfg = config.Load[*Config]()
