package build

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	// Registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/clock"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS builds (
	session_id      TEXT PRIMARY KEY,
	catalog_version TEXT NOT NULL,
	state           TEXT NOT NULL,
	updated_at      INTEGER NOT NULL
)`

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("database is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// OpenSQLite opens the database at path and applies the schema
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}
	if path != MemoryPath {
		path = filepath.Clean(path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db %s", path)
	}
	// Every connection to :memory: is its own database, and sqlite
	// serialises writers anyway
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to set busy timeout")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}

	return db, nil
}

// NewSQLiteRepository creates a SQLite backed build repository. The database
// must already carry the schema applied by OpenSQLite.
func NewSQLiteRepository(cfg *SQLiteConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: cfg.Clock,
	}, nil
}

var _ Repository = (*sqliteRepository)(nil)

// Save upserts the build
func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	record := &Record{
		SessionID:      input.SessionID,
		CatalogVersion: input.CatalogVersion,
		State:          input.State.Clone(),
		UpdatedAt:      r.clock.Now().UTC().Truncate(time.Millisecond),
	}

	state, err := json.Marshal(record.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO builds (session_id, catalog_version, state, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   catalog_version = excluded.catalog_version,
		   state = excluded.state,
		   updated_at = excluded.updated_at`,
		record.SessionID,
		record.CatalogVersion,
		string(state),
		record.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store build in sqlite")
	}

	return &SaveOutput{Record: record}, nil
}

// Get loads the build stored for a session
func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	var (
		record    = Record{SessionID: input.SessionID}
		state     string
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT catalog_version, state, updated_at FROM builds WHERE session_id = ?`,
		input.SessionID,
	).Scan(&record.CatalogVersion, &state, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound(errBuildNotFound).WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get build from sqlite")
	}

	if err := json.Unmarshal([]byte(state), &record.State); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal build").
			WithMeta("session_id", input.SessionID)
	}
	if record.State.SkillLevels == nil {
		record.State.SkillLevels = map[string]int{}
	}
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &GetOutput{Record: &record}, nil
}

// Delete removes the build stored for a session
func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM builds WHERE session_id = ?`, input.SessionID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete build from sqlite")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read affected rows")
	}

	return &DeleteOutput{Deleted: affected > 0}, nil
}
