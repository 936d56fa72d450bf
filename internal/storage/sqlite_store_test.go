package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "rosy-test.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleTasks(t *testing.T) []model.Task {
	t.Helper()
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []model.Task{
		{
			ID:            "task-2",
			Text:          "Stretch for ten minutes",
			Category:      model.CategoryHealth,
			CreatedAt:     created.Add(time.Minute),
			EstimatedTime: "10 minutes",
		},
		{
			ID:        "task-1",
			Text:      "Buy milk",
			Completed: true,
			Category:  model.CategoryPersonal,
			CreatedAt: created,
		},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	want := sampleTasks(t)

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Text != want[i].Text ||
			got[i].Completed != want[i].Completed || got[i].Category != want[i].Category ||
			!got[i].CreatedAt.Equal(want[i].CreatedAt) || got[i].EstimatedTime != want[i].EstimatedTime {
			t.Fatalf("task %d mismatch: got %#v want %#v", i, got[i], want[i])
		}
	}
}

func TestSQLiteStoreLoadEmpty(t *testing.T) {
	store := setupSQLiteStore(t)
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d tasks", len(got))
	}
}

func TestSQLiteStoreLastWriteWins(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, sampleTasks(t)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected overwrite to empty list, got %d tasks", len(got))
	}
}

func TestSQLiteStoreCorruptBlob(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)`,
		tasksKey, []byte("{not json"), "2026-03-01T09:30:00Z")
	if err != nil {
		t.Fatalf("inject corrupt blob: %v", err)
	}

	got, err := store.Load(ctx)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list alongside corruption error, got %d tasks", len(got))
	}
}

func TestDecodeCoercesAndDropsBadRecords(t *testing.T) {
	raw := []byte(`[
		{"id":"a","text":"Buy milk","completed":false,"category":"bogus","dueDate":"2024-01-01T10:00:00.000Z"},
		{"id":"","text":"no id","completed":false,"category":"work","dueDate":"2024-01-01T10:00:00.000Z"},
		{"id":"b","text":"   ","completed":false,"category":"work","dueDate":"2024-01-01T10:00:00.000Z"},
		{"id":"c","text":"Call grandma","completed":true,"category":"social","dueDate":"not-a-time"}
	]`)
	got, err := decodeTasks(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving records, got %d", len(got))
	}
	if got[0].Category != model.CategoryPersonal {
		t.Fatalf("expected bogus category coerced to personal, got %q", got[0].Category)
	}
	if got[1].ID != "c" || !got[1].CreatedAt.IsZero() {
		t.Fatalf("expected bad timestamp tolerated with zero time, got %#v", got[1])
	}
}
