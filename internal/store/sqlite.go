package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jmylchreest/tourkit/internal/model"
)

// ErrNoActiveTheme is returned when the store holds no active config.
var ErrNoActiveTheme = errors.New("no active theme config")

// ErrVersionNotFound is returned when activating an unknown version.
var ErrVersionNotFound = errors.New("theme config version not found")

// themeSchemaVersion is bumped when the schema changes incompatibly.
const themeSchemaVersion = 1

const themeSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS theme_configs (
    id TEXT PRIMARY KEY,              -- ULID
    version INTEGER NOT NULL UNIQUE,
    is_active INTEGER NOT NULL DEFAULT 0,
    light TEXT NOT NULL,              -- JSON ThemeColors
    dark TEXT NOT NULL,               -- JSON ThemeColors
    created_by TEXT NOT NULL,
    created_at INTEGER NOT NULL,      -- UnixNano
    updated_at INTEGER NOT NULL       -- UnixNano
);

CREATE INDEX IF NOT EXISTS idx_theme_configs_active ON theme_configs(is_active) WHERE is_active = 1;
`

// SQLiteSource keeps every published ThemeConfig as a numbered version.
// Exactly one version is active at a time; GetThemeConfig serves it.
type SQLiteSource struct {
	db   *sql.DB
	path string
}

// OpenSQLiteSource opens (creating if needed) the theme database at path.
func OpenSQLiteSource(path string) (*SQLiteSource, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Publish relies on a single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &SQLiteSource{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteSource) initSchema() error {
	if _, err := s.db.Exec(themeSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", themeSchemaVersion)
		if err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case version > themeSchemaVersion:
		return fmt.Errorf("unsupported schema version %d (max: %d)", version, themeSchemaVersion)
	}
	return nil
}

// Path returns the database file path.
func (s *SQLiteSource) Path() string {
	return s.path
}

// Close closes the database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// GetThemeConfig implements theme.Source.
func (s *SQLiteSource) GetThemeConfig(ctx context.Context) (*model.ThemeConfig, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, version, is_active, light, dark, created_by, created_at, updated_at
		FROM theme_configs WHERE is_active = 1
		ORDER BY version DESC LIMIT 1`)

	cfg, err := scanThemeConfig(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoActiveTheme
	}
	return cfg, err
}

// Publish stores a new version built from the given palettes, makes it the
// active one and returns it.
func (s *SQLiteSource) Publish(ctx context.Context, light, dark model.ThemeColors, createdBy string) (*model.ThemeConfig, error) {
	cfg, err := model.NewThemeConfig(light, dark, createdBy)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme config: %w", err)
	}

	lightJSON, err := json.Marshal(light)
	if err != nil {
		return nil, err
	}
	darkJSON, err := json.Marshal(dark)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxVersion sql.NullInt64
	if err := tx.QueryRowContext(ctx, "SELECT MAX(version) FROM theme_configs").Scan(&maxVersion); err != nil {
		return nil, fmt.Errorf("failed to read latest version: %w", err)
	}
	cfg.Version = int(maxVersion.Int64) + 1

	if _, err := tx.ExecContext(ctx, "UPDATE theme_configs SET is_active = 0 WHERE is_active = 1"); err != nil {
		return nil, fmt.Errorf("failed to deactivate previous version: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO theme_configs (id, version, is_active, light, dark, created_by, created_at, updated_at)
		VALUES (?, ?, 1, ?, ?, ?, ?, ?)`,
		cfg.ID, cfg.Version, string(lightJSON), string(darkJSON), cfg.CreatedBy,
		cfg.CreatedAt.UnixNano(), cfg.UpdatedAt.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to insert theme config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return cfg, nil
}

// Activate makes an existing version the active one.
func (s *SQLiteSource) Activate(ctx context.Context, version int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM theme_configs WHERE version = ?", version).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %d", ErrVersionNotFound, version)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE theme_configs SET is_active = 0 WHERE is_active = 1"); err != nil {
		return fmt.Errorf("failed to deactivate previous version: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE theme_configs SET is_active = 1, updated_at = ? WHERE version = ?",
		time.Now().UnixNano(), version)
	if err != nil {
		return fmt.Errorf("failed to activate version %d: %w", version, err)
	}

	return tx.Commit()
}

// History returns stored versions, newest first. limit <= 0 returns all.
func (s *SQLiteSource) History(ctx context.Context, limit int) ([]model.ThemeConfig, error) {
	query := `
		SELECT id, version, is_active, light, dark, created_by, created_at, updated_at
		FROM theme_configs ORDER BY version DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var configs []model.ThemeConfig
	for rows.Next() {
		cfg, err := scanThemeConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *cfg)
	}
	return configs, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanThemeConfig(row scanner) (*model.ThemeConfig, error) {
	var (
		cfg                  model.ThemeConfig
		active               int
		lightJSON, darkJSON  string
		createdAt, updatedAt int64
	)

	err := row.Scan(&cfg.ID, &cfg.Version, &active, &lightJSON, &darkJSON,
		&cfg.CreatedBy, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(lightJSON), &cfg.Light); err != nil {
		return nil, fmt.Errorf("corrupt light palette in version %d: %w", cfg.Version, err)
	}
	if err := json.Unmarshal([]byte(darkJSON), &cfg.Dark); err != nil {
		return nil, fmt.Errorf("corrupt dark palette in version %d: %w", cfg.Version, err)
	}

	cfg.IsActive = active == 1
	cfg.CreatedAt = time.Unix(0, createdAt)
	cfg.UpdatedAt = time.Unix(0, updatedAt)
	return &cfg, nil
}
