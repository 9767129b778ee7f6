// Package db persists demo runs and their sampled series to sqlite, and
// mounts the admin debug console for browsing them.
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tailscale/tailsql/server/tailsql"
	_ "modernc.org/sqlite"
	"tailscale.com/tsweb"
)

type DB struct {
	*sql.DB
	path string
}

// Open opens (or creates) the run store at path and bootstraps the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			kind              TEXT NOT NULL,
			params            TEXT,
			summary           TEXT,
			created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS samples (
			run_id            TEXT NOT NULL,
			idx               BIGINT NOT NULL,
			x                 DOUBLE,
			y                 DOUBLE,
			PRIMARY KEY (run_id, idx),
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
		CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind, created_at);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, path: path}, nil
}

// Run is one recorded demo run.
type Run struct {
	RunID     string          `json:"run_id"`
	Kind      string          `json:"kind"`
	Params    json.RawMessage `json:"params,omitempty"`
	Summary   json.RawMessage `json:"summary,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// RecordRun stores a run and returns its generated id. params and summary
// are marshalled to JSON; either may be nil.
func (db *DB) RecordRun(kind string, params, summary interface{}) (string, error) {
	if kind == "" {
		return "", fmt.Errorf("db: run kind must not be empty")
	}

	id := uuid.NewString()

	pj, err := marshalOrNull(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal params: %w", err)
	}
	sj, err := marshalOrNull(summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO runs (run_id, kind, params, summary) VALUES (?, ?, ?, ?)`,
		id, kind, pj, sj,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func marshalOrNull(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// RecordSamples stores an (x, y) series for a run.
func (db *DB) RecordSamples(runID string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("db: %d xs and %d ys", len(xs), len(ys))
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO samples (run_id, idx, x, y) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range xs {
		if _, err := stmt.Exec(runID, i, xs[i], ys[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Runs returns the most recent runs, optionally filtered by kind.
func (db *DB) Runs(kind string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT run_id, kind, params, summary, created_at FROM runs`
	args := []interface{}{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var params, summary sql.NullString
		if err := rows.Scan(&r.RunID, &r.Kind, &params, &summary, &r.CreatedAt); err != nil {
			return nil, err
		}
		if params.Valid {
			r.Params = json.RawMessage(params.String)
		}
		if summary.Valid {
			r.Summary = json.RawMessage(summary.String)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// RunSamples returns the sampled series for a run in index order.
func (db *DB) RunSamples(runID string) (xs, ys []float64, err error) {
	rows, err := db.Query(`SELECT x, y FROM samples WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var x, y float64
		if err := rows.Scan(&x, &y); err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// AttachAdminRoutes mounts the tsweb debugger with a tailSQL console over
// the run store and a backup download endpoint.
func (db *DB) AttachAdminRoutes(mux *http.ServeMux) {
	debug := tsweb.Debugger(mux)

	tsql, err := tailsql.NewServer(tailsql.Options{
		RoutePrefix: "/debug/tailsql/",
	})
	if err != nil {
		log.Fatalf("failed to create tailsql server: %v", err)
	}
	tsql.SetDB("sqlite://"+db.path, db.DB, &tailsql.DBOptions{
		Label: "Runs DB",
	})
	debug.Handle("tailsql/", "SQL live debugging", tsql.NewMux())

	debug.Handle("backup", "Create and download a backup of the run store now", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backupPath := fmt.Sprintf("backup-%d.db", time.Now().Unix())
		if _, err := db.DB.Exec("VACUUM INTO ?", backupPath); err != nil {
			http.Error(w, fmt.Sprintf("Failed to create backup: %v", err), http.StatusInternalServerError)
			return
		}
		defer os.Remove(backupPath)

		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", backupPath))
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, backupPath)
	}))
}
