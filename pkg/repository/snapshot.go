package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/deskhound/deskhound/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Snapshot is the on-disk form of the registry: the full ticket mapping plus
// the source-message index, written indented for human diffability.
type Snapshot struct {
	Tickets map[types.MessageTS]*ticket.Ticket  `json:"tickets"`
	Index   map[types.MessageTS]types.MessageTS `json:"index"`
}

// Store persists the registry to a single snapshot file, overwritten
// wholesale on every save. The in-memory registry is always the source of
// truth for the running process; the file only covers restarts.
type Store struct {
	registry *Registry
	path     string
	interval time.Duration
}

func NewStore(registry *Registry, path string, interval time.Duration) *Store {
	return &Store{
		registry: registry,
		path:     path,
		interval: interval,
	}
}

// Load applies the snapshot file to the registry. It returns true only when a
// snapshot existed and was applied; a missing file leaves the registry empty
// and is not an error.
func (x *Store) Load(ctx context.Context) (bool, error) {
	data, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to read snapshot file", goerr.V("path", x.path))
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return false, goerr.Wrap(err, "failed to parse snapshot file", goerr.V("path", x.path))
	}
	if snapshot.Tickets == nil {
		snapshot.Tickets = map[types.MessageTS]*ticket.Ticket{}
	}
	if snapshot.Index == nil {
		snapshot.Index = map[types.MessageTS]types.MessageTS{}
	}

	x.registry.Restore(&snapshot)
	logging.From(ctx).Info("loaded ticket snapshot",
		"path", x.path, "tickets", len(snapshot.Tickets))
	return true, nil
}

// Save writes the current registry state. It is best effort: failures are
// logged and swallowed, and never undo the in-memory mutation that triggered
// the save.
func (x *Store) Save(ctx context.Context) {
	if err := x.save(); err != nil {
		logging.From(ctx).Error("failed to save ticket snapshot",
			"path", x.path, "error", err)
	}
}

func (x *Store) save() error {
	data, err := json.MarshalIndent(x.registry.Export(), "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal snapshot")
	}

	tmp := x.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return goerr.Wrap(err, "failed to write snapshot file", goerr.V("path", tmp))
	}
	if err := os.Rename(tmp, x.path); err != nil {
		return goerr.Wrap(err, "failed to replace snapshot file", goerr.V("path", x.path))
	}
	return nil
}

// Run saves on a fixed interval as a durability backstop until the context is
// cancelled. Mutating operations save on their own; this loop only covers
// writes lost to crashes between them.
func (x *Store) Run(ctx context.Context) {
	logger := logging.From(ctx)
	logger.Info("starting periodic snapshot loop", "interval", x.interval)

	ticker := time.NewTicker(x.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			x.Save(ctx)
			logger.Info("snapshot loop stopped")
			return
		case <-ticker.C:
			x.Save(ctx)
		}
	}
}
