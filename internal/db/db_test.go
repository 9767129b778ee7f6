package db

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndListRuns(t *testing.T) {
	db := openTestDB(t)

	params := map[string]float64{"v0": 1, "mu": 1}
	summary := map[string]interface{}{"estimate_re": -1.0, "stderr": 0.01}

	id, err := db.RecordRun("born", params, summary)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if id == "" {
		t.Fatal("empty run id")
	}
	if _, err := db.RecordRun("entangle", nil, nil); err != nil {
		t.Fatalf("RecordRun with nil payloads: %v", err)
	}

	runs, err := db.Runs("", 10)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	born, err := db.Runs("born", 10)
	if err != nil {
		t.Fatalf("Runs(born): %v", err)
	}
	if len(born) != 1 {
		t.Fatalf("got %d born runs, want 1", len(born))
	}
	if born[0].RunID != id {
		t.Errorf("run id = %q, want %q", born[0].RunID, id)
	}
	if len(born[0].Params) == 0 {
		t.Error("params not stored")
	}
}

func TestRecordRunEmptyKind(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.RecordRun("", nil, nil); err == nil {
		t.Error("expected error for empty kind")
	}
}

func TestRecordAndFetchSamples(t *testing.T) {
	db := openTestDB(t)

	id, err := db.RecordRun("ode", nil, nil)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	xs := []float64{0, 0.1, 0.2, 0.3}
	ys := []float64{1, 0.9, 0.82, 0.74}
	if err := db.RecordSamples(id, xs, ys); err != nil {
		t.Fatalf("RecordSamples: %v", err)
	}

	gx, gy, err := db.RunSamples(id)
	if err != nil {
		t.Fatalf("RunSamples: %v", err)
	}
	if diff := cmp.Diff(xs, gx); diff != "" {
		t.Errorf("x samples mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ys, gy); diff != "" {
		t.Errorf("y samples mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordSamplesLengthMismatch(t *testing.T) {
	db := openTestDB(t)
	if err := db.RecordSamples("x", []float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestRunSamplesUnknownRun(t *testing.T) {
	db := openTestDB(t)
	xs, ys, err := db.RunSamples("no-such-run")
	if err != nil {
		t.Fatalf("RunSamples: %v", err)
	}
	if len(xs) != 0 || len(ys) != 0 {
		t.Errorf("got %d samples for unknown run", len(xs))
	}
}

func TestMigrations(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(filepath.Join(dir, "migrate.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	migrationsDir := "../../migrations"

	require.NoError(t, db.MigrateUp(migrationsDir))

	version, dirty, err := db.MigrateVersion(migrationsDir)
	require.NoError(t, err)
	if dirty {
		t.Error("database dirty after MigrateUp")
	}
	if version == 0 {
		t.Error("version still 0 after MigrateUp")
	}

	latest, err := LatestMigrationVersion(migrationsDir)
	require.NoError(t, err)
	if version != latest {
		t.Errorf("version = %d, latest = %d", version, latest)
	}

	// Up again is a no-op.
	require.NoError(t, db.MigrateUp(migrationsDir))
}
