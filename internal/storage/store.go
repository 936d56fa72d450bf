package storage

import (
	"context"
	"errors"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

// ErrCorrupt marks a stored blob that could not be decoded. Load still
// returns a usable (empty) list alongside it so the session can start.
var ErrCorrupt = errors.New("storage: corrupt task blob")

// Store persists the whole task list as a single blob. Last write wins;
// there is no batching and no partial update.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
	Close() error
}
