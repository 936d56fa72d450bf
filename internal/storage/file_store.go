package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

// FileStore persists the task blob as a JSON file, written atomically
// via a temp file and rename.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) Load(ctx context.Context) ([]model.Task, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	return decodeTasks(raw)
}

func (s *FileStore) Save(ctx context.Context, tasks []model.Task) error {
	payload, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
