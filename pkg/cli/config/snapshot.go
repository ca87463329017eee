package config

import (
	"log/slog"
	"time"

	"github.com/deskhound/deskhound/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Snapshot struct {
	path     string
	interval time.Duration
}

func (x *Snapshot) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "snapshot-path",
			Usage:       "Path of the ticket snapshot file",
			Category:    "Snapshot",
			Value:       "tickets.json",
			Destination: &x.path,
			Sources:     cli.EnvVars("DESKHOUND_SNAPSHOT_PATH"),
		},
		&cli.DurationFlag{
			Name:        "snapshot-interval",
			Usage:       "Interval of the periodic snapshot save",
			Category:    "Snapshot",
			Value:       5 * time.Minute,
			Destination: &x.interval,
			Sources:     cli.EnvVars("DESKHOUND_SNAPSHOT_INTERVAL"),
		},
	}
}

func (x Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.Duration("interval", x.interval),
	)
}

func (x *Snapshot) Configure(registry *repository.Registry) (*repository.Store, error) {
	if x.path == "" {
		return nil, goerr.New("snapshot path is not set")
	}
	if x.interval <= 0 {
		return nil, goerr.New("snapshot interval must be positive", goerr.V("interval", x.interval))
	}

	return repository.NewStore(registry, x.path, x.interval), nil
}
