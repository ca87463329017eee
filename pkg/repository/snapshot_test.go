package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/deskhound/deskhound/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.json")

	registry := repository.NewRegistry()
	store := repository.NewStore(registry, path, time.Minute)

	base := time.Date(2025, 11, 18, 9, 0, 0, 0, time.UTC)
	for i, originalTS := range []types.MessageTS{"1.000100", "2.000100", "3.000100"} {
		tk := ticket.New("C_HELP", originalTS, "summary", "response", base.Add(time.Duration(i)*time.Second))
		tk.TicketTS = types.MessageTS("card-" + originalTS.String())
		gt.NoError(t, registry.Put(tk))
	}
	_, _, err := registry.Claim("card-1.000100", "U001")
	gt.NoError(t, err)
	_, _, err = registry.MarkNotSure("card-2.000100", "U002")
	gt.NoError(t, err)

	store.Save(context.Background())

	restored := repository.NewRegistry()
	restoredStore := repository.NewStore(restored, path, time.Minute)
	loaded := gt.R1(restoredStore.Load(context.Background())).NoError(t)
	gt.True(t, loaded)

	gt.V(t, restored.Count()).Equal(3)

	first := gt.R1(restored.Get("card-1.000100")).NoError(t)
	gt.A(t, first.Claimers).Length(1)
	gt.V(t, first.Claimers[0]).Equal(types.UserID("U001"))
	gt.A(t, first.NotSure).Length(0)
	gt.V(t, first.Summary).Equal("summary")
	gt.True(t, first.CreatedAt.Equal(base))

	second := gt.R1(restored.GetByOriginal("2.000100")).NoError(t)
	gt.A(t, second.NotSure).Length(1)

	// Empty sets survive the round trip as empty, not nil-collapsed entries.
	third := gt.R1(restored.Get("card-3.000100")).NoError(t)
	gt.A(t, third.Claimers).Length(0)
	gt.A(t, third.NotSure).Length(0)
}

func TestSnapshotLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	registry := repository.NewRegistry()
	store := repository.NewStore(registry, path, time.Minute)

	loaded := gt.R1(store.Load(context.Background())).NoError(t)
	gt.False(t, loaded)
	gt.V(t, registry.Count()).Equal(0)
}

func TestSnapshotLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	gt.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	registry := repository.NewRegistry()
	store := repository.NewStore(registry, path, time.Minute)

	_, err := store.Load(context.Background())
	gt.Error(t, err)
}

func TestSnapshotFileIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.json")
	registry := repository.NewRegistry()
	store := repository.NewStore(registry, path, time.Minute)

	tk := ticket.New("C_HELP", "1.000100", "s", "r", time.Now())
	tk.TicketTS = "2.000100"
	gt.NoError(t, registry.Put(tk))
	store.Save(context.Background())

	data := gt.R1(os.ReadFile(path)).NoError(t)

	var snapshot repository.Snapshot
	gt.NoError(t, json.Unmarshal(data, &snapshot))
	gt.V(t, len(snapshot.Tickets)).Equal(1)

	indented, err := json.MarshalIndent(&snapshot, "", "  ")
	gt.NoError(t, err)
	gt.V(t, string(data)).Equal(string(indented))
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	// Point the snapshot at a directory so the rename fails.
	registry := repository.NewRegistry()
	store := repository.NewStore(registry, dir, time.Minute)

	tk := ticket.New("C_HELP", "1.000100", "s", "r", time.Now())
	tk.TicketTS = "2.000100"
	gt.NoError(t, registry.Put(tk))

	store.Save(context.Background()) // logged, swallowed

	gt.V(t, registry.Count()).Equal(1)
}
