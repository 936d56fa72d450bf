// Package tasklist holds the in-memory ordered task collection, the
// single source of truth for the session.
package tasklist

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

// List is an ordered collection of tasks, most recent first. The id
// generator and clock are injectable so tests can pin them.
type List struct {
	tasks []model.Task
	newID func() string
	now   func() time.Time
}

func New() *List {
	return &List{
		tasks: []model.Task{},
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func NewWithGenerators(newID func() string, now func() time.Time) *List {
	l := New()
	if newID != nil {
		l.newID = newID
	}
	if now != nil {
		l.now = now
	}
	return l
}

// Replace swaps in an externally loaded task list, preserving its order.
func (l *List) Replace(tasks []model.Task) {
	l.tasks = append([]model.Task{}, tasks...)
}

// Create prepends a new task. Blank text is rejected; the task keeps
// the trimmed text. An unrecognized category coerces to personal.
func (l *List) Create(text string, category model.Category, estimatedTime string) (model.Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Task{}, false
	}
	if !category.IsValid() {
		category = model.CategoryPersonal
	}
	task := model.Task{
		ID:            l.newID(),
		Text:          trimmed,
		Category:      category,
		CreatedAt:     l.now().UTC(),
		EstimatedTime: estimatedTime,
	}
	l.tasks = append([]model.Task{task}, l.tasks...)
	return task, true
}

// Toggle flips the completed flag on the matching task and returns the
// updated task. Unknown ids are a no-op.
func (l *List) Toggle(id string) (model.Task, bool) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			return l.tasks[i], true
		}
	}
	return model.Task{}, false
}

// Remove deletes the matching task. Unknown ids are a no-op.
func (l *List) Remove(id string) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the task with the given id.
func (l *List) Get(id string) (model.Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Filtered returns an order-preserving projection of the list.
func (l *List) Filtered(f model.Filter) []model.Task {
	out := make([]model.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.Matches(f) {
			out = append(out, t)
		}
	}
	return out
}

// All returns a copy of the full ordered list.
func (l *List) All() []model.Task {
	return append([]model.Task{}, l.tasks...)
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) CompletedCount() int {
	count := 0
	for _, t := range l.tasks {
		if t.Completed {
			count++
		}
	}
	return count
}
