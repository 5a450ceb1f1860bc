// Package storage persists canvases and generated media in SQLite.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/timing"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// ErrNotFound is returned when a canvas or media record does not exist
var ErrNotFound = errors.New("not found")

//go:embed migrations/*.sql
var migrations embed.FS

// Media is a stored blob, typically a generated image
type Media struct {
	ID       string
	MimeType string
	Data     []byte
}

// Repository is the SQLite store
type Repository struct {
	db *sql.DB
}

// New wraps an open database
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// OpenSQLite opens (and creates if needed) the database file at dbPath
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000&_pragma=foreign_keys(1)", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Init applies the embedded migrations in name order
func (r *Repository) Init(ctx context.Context) error {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	for _, entry := range entries {
		data, err := migrations.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
		logutil.Debugf("[storage] applied %s", entry.Name())
	}
	return nil
}

// Ping checks the database connection
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// SaveCanvas replaces the stored elements and viewport of a canvas.
// Element order is kept.
func (r *Repository) SaveCanvas(ctx context.Context, canvasID string, elements []types.Element, v types.Viewport) (err error) {
	timer := timing.Start("storage_save_canvas")
	defer func() { timer.StopAndLogDetails(err == nil, "canvas=%s elements=%d", canvasID, len(elements)) }()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO canvases (id, viewport_x, viewport_y, viewport_scale, updated_at)
        VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(id) DO UPDATE SET
            viewport_x = excluded.viewport_x,
            viewport_y = excluded.viewport_y,
            viewport_scale = excluded.viewport_scale,
            updated_at = CURRENT_TIMESTAMP
    `, canvasID, v.X, v.Y, v.Scale)
	if err != nil {
		return fmt.Errorf("upsert canvas: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM canvas_elements WHERE canvas_id = ?`, canvasID); err != nil {
		return fmt.Errorf("clear elements: %w", err)
	}

	for i, el := range elements {
		payload, mErr := json.Marshal(atom.ToCanvasElement(el))
		if mErr != nil {
			return fmt.Errorf("encode element %s: %w", el.ID, mErr)
		}
		_, err = tx.ExecContext(ctx, `
            INSERT INTO canvas_elements (canvas_id, id, position, payload)
            VALUES (?, ?, ?, ?)
        `, canvasID, el.ID, i, string(payload))
		if err != nil {
			return fmt.Errorf("insert element %s: %w", el.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadCanvas reads a canvas back. ErrNotFound if it was never saved.
func (r *Repository) LoadCanvas(ctx context.Context, canvasID string) ([]types.Element, types.Viewport, error) {
	var v types.Viewport
	row := r.db.QueryRowContext(ctx, `
        SELECT viewport_x, viewport_y, viewport_scale
        FROM canvases
        WHERE id = ?
    `, canvasID)
	if err := row.Scan(&v.X, &v.Y, &v.Scale); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.Viewport{}, fmt.Errorf("canvas %s: %w", canvasID, ErrNotFound)
		}
		return nil, types.Viewport{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT payload
        FROM canvas_elements
        WHERE canvas_id = ?
        ORDER BY position
    `, canvasID)
	if err != nil {
		return nil, types.Viewport{}, fmt.Errorf("query elements: %w", err)
	}
	defer rows.Close()

	var elements []types.Element
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, types.Viewport{}, err
		}
		var ce types.CanvasElement
		if err := json.Unmarshal([]byte(payload), &ce); err != nil {
			return nil, types.Viewport{}, fmt.Errorf("decode element: %w", err)
		}
		elements = append(elements, atom.FromCanvasElement(ce))
	}
	if err := rows.Err(); err != nil {
		return nil, types.Viewport{}, err
	}
	return elements, v, nil
}

// SaveMedia stores a blob under a new id and returns the id
func (r *Repository) SaveMedia(ctx context.Context, mimeType string, data []byte) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO media (id, mime_type, data)
        VALUES (?, ?, ?)
    `, id, mimeType, data)
	if err != nil {
		return "", fmt.Errorf("insert media: %w", err)
	}
	logutil.Debugf("[storage] saved media %s (%s, %d bytes)", id, mimeType, len(data))
	return id, nil
}

// GetMedia returns a stored blob. ErrNotFound if the id is unknown.
func (r *Repository) GetMedia(ctx context.Context, id string) (*Media, error) {
	m := Media{ID: id}
	row := r.db.QueryRowContext(ctx, `SELECT mime_type, data FROM media WHERE id = ?`, id)
	if err := row.Scan(&m.MimeType, &m.Data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("media %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &m, nil
}
