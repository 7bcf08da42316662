package planstore

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"argus/internal/naming"
	"argus/internal/pipeline"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; old databases must be cleared or deleted.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Run summarizes one persisted engine run.
type Run struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Records     int       `json:"records"`
	Groups      int       `json:"groups"`
	Excluded    int       `json:"excluded"`
	Unresolved  int       `json:"unresolved"`
	Diagnostics int       `json:"diagnostics"`
}

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the run database. A lock file beside the
// database enforces a single writer across processes.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another argus instance holds the run store")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database and the cross-process lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'argus runs clear' or delete the database)",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// SaveRun persists one result with its assignments and diagnostics.
func (s *Store) SaveRun(ctx context.Context, result *pipeline.Result) (*Run, error) {
	if result == nil {
		return nil, errors.New("result is nil")
	}

	run := &Run{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Records:     result.Records,
		Groups:      len(result.Groups),
		Excluded:    result.Excluded,
		Unresolved:  result.Unresolved,
		Diagnostics: len(result.Diagnostics),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, records, group_count, excluded, unresolved, diagnostics)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.Records,
		run.Groups,
		run.Excluded,
		run.Unresolved,
		run.Diagnostics,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	for _, a := range result.Assignments() {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO assignments (
                run_id, group_key, image_id, sku, description, sequence,
                file_name, folder, excluded, truncated, collision
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			a.GroupKey,
			a.ImageID,
			a.SKU,
			a.Description,
			a.Sequence,
			a.FileName,
			a.Folder,
			boolToInt(a.Excluded),
			boolToInt(a.Truncated),
			boolToInt(a.Collision),
		)
		if err != nil {
			return nil, fmt.Errorf("insert assignment for %s: %w", a.ImageID, err)
		}
	}

	for _, d := range result.Diagnostics {
		ids, err := json.Marshal(d.ImageIDs)
		if err != nil {
			return nil, fmt.Errorf("marshal image ids: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO diagnostics (run_id, group_key, reason, detail, image_ids)
             VALUES (?, ?, ?, ?, ?)`,
			run.ID, d.GroupKey, d.Reason, d.Detail, string(ids),
		)
		if err != nil {
			return nil, fmt.Errorf("insert diagnostic: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit save: %w", err)
	}
	return run, nil
}

const runColumns = `id, created_at, records, group_count, excluded, unresolved, diagnostics`

// GetRun fetches one run by identifier; a missing run returns nil.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Assignments returns a run's assignments in insertion order.
func (s *Store) Assignments(ctx context.Context, runID string) ([]naming.Assignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT group_key, image_id, sku, description, sequence, file_name,
                folder, excluded, truncated, collision
         FROM assignments WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	var out []naming.Assignment
	for rows.Next() {
		var a naming.Assignment
		var excluded, truncated, collision int
		if err := rows.Scan(&a.GroupKey, &a.ImageID, &a.SKU, &a.Description,
			&a.Sequence, &a.FileName, &a.Folder, &excluded, &truncated, &collision); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		a.Excluded = excluded != 0
		a.Truncated = truncated != 0
		a.Collision = collision != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

// Diagnostics returns a run's diagnostics in insertion order.
func (s *Store) Diagnostics(ctx context.Context, runID string) ([]pipeline.Diagnostic, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT group_key, reason, detail, image_ids FROM diagnostics WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query diagnostics: %w", err)
	}
	defer rows.Close()

	var out []pipeline.Diagnostic
	for rows.Next() {
		var d pipeline.Diagnostic
		var ids string
		if err := rows.Scan(&d.GroupKey, &d.Reason, &d.Detail, &ids); err != nil {
			return nil, fmt.Errorf("scan diagnostic: %w", err)
		}
		if err := json.Unmarshal([]byte(ids), &d.ImageIDs); err != nil {
			return nil, fmt.Errorf("decode image ids: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Clear removes all persisted runs.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAt string
	if err := row.Scan(&run.ID, &createdAt, &run.Records, &run.Groups,
		&run.Excluded, &run.Unresolved, &run.Diagnostics); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = ts
	return &run, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
