package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded generation run.
type Run struct {
	RunID        string        `json:"run_id"`
	InputPath    string        `json:"input_path"`
	InputSHA256  string        `json:"input_sha256"`
	GridX        int           `json:"grid_x"`
	GridY        int           `json:"grid_y"`
	GridZ        int           `json:"grid_z"`
	Rooms        int           `json:"rooms"`
	Points       int           `json:"points"`
	Simplices    int           `json:"simplices"`
	Corridors    int           `json:"corridors"`
	Atoms        int           `json:"atoms"`
	SkippedLinks int           `json:"skipped_links"`
	ModelOutput  string        `json:"model_output,omitempty"`
	AtomsOutput  string        `json:"atoms_output,omitempty"`
	Version      string        `json:"version,omitempty"`
	Duration     time.Duration `json:"duration"`
	CreatedAt    int64         `json:"created_at"` // unix nanoseconds

	// Diagnostics is written with the run; ListRuns leaves it empty.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Diagnostic is one skipped link of a run.
type Diagnostic struct {
	LinkIndex int    `json:"link_index"`
	Source    [3]int `json:"source"`
	Target    [3]int `json:"target"`
	Reason    string `json:"reason"`
}

// RecordRun inserts run and its diagnostics in one transaction. An empty
// RunID gets a fresh UUID; a zero CreatedAt gets the current time.
func (c *Catalog) RecordRun(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO generation_runs (
			run_id, input_path, input_sha256, grid_x, grid_y, grid_z,
			rooms, points, simplices, corridors, atoms, skipped_links,
			model_output, atoms_output, version, duration_ns, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.InputPath, run.InputSHA256, run.GridX, run.GridY, run.GridZ,
		run.Rooms, run.Points, run.Simplices, run.Corridors, run.Atoms, run.SkippedLinks,
		nullString(run.ModelOutput), nullString(run.AtomsOutput), nullString(run.Version),
		run.Duration.Nanoseconds(), run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.RunID, err)
	}

	for _, d := range run.Diagnostics {
		_, err := tx.Exec(`
			INSERT INTO run_diagnostics (
				run_id, link_index, source_x, source_y, source_z,
				target_x, target_y, target_z, reason
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.RunID, d.LinkIndex, d.Source[0], d.Source[1], d.Source[2],
			d.Target[0], d.Target[1], d.Target[2], d.Reason,
		)
		if err != nil {
			return fmt.Errorf("failed to insert diagnostic for link %d: %w", d.LinkIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.RunID, err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all.
func (c *Catalog) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := c.db.Query(`
		SELECT run_id, input_path, input_sha256, grid_x, grid_y, grid_z,
			rooms, points, simplices, corridors, atoms, skipped_links,
			model_output, atoms_output, version, duration_ns, created_at
		FROM generation_runs
		ORDER BY created_at DESC, run_id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			r                     Run
			model, atoms, version sql.NullString
			durationNanos         int64
		)
		if err := rows.Scan(
			&r.RunID, &r.InputPath, &r.InputSHA256, &r.GridX, &r.GridY, &r.GridZ,
			&r.Rooms, &r.Points, &r.Simplices, &r.Corridors, &r.Atoms, &r.SkippedLinks,
			&model, &atoms, &version, &durationNanos, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.ModelOutput = model.String
		r.AtomsOutput = atoms.String
		r.Version = version.String
		r.Duration = time.Duration(durationNanos)
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// RunDiagnostics returns the diagnostics recorded for runID in link order.
func (c *Catalog) RunDiagnostics(runID string) ([]Diagnostic, error) {
	rows, err := c.db.Query(`
		SELECT link_index, source_x, source_y, source_z,
			target_x, target_y, target_z, reason
		FROM run_diagnostics
		WHERE run_id = ?
		ORDER BY link_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnostics: %w", err)
	}
	defer rows.Close()

	var diags []Diagnostic
	for rows.Next() {
		var d Diagnostic
		if err := rows.Scan(
			&d.LinkIndex, &d.Source[0], &d.Source[1], &d.Source[2],
			&d.Target[0], &d.Target[1], &d.Target[2], &d.Reason,
		); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic: %w", err)
		}
		diags = append(diags, d)
	}
	return diags, rows.Err()
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
