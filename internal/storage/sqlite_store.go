package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

const tasksKey = "tasks"

// SQLiteStore keeps the task blob in a single-row key/value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ApplySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) ([]model.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, tasksKey)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("load task blob: %w", err)
	}
	return decodeTasks(raw)
}

func (s *SQLiteStore) Save(ctx context.Context, tasks []model.Task) error {
	payload, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		tasksKey, payload, time.Now().UTC().Format(blobTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("save task blob: %w", err)
	}
	return nil
}
