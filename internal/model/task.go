package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidCategory = errors.New("model: invalid task category")
	ErrInvalidFilter   = errors.New("model: invalid list filter")
)

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategorySocial   Category = "social"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategorySocial:
		return true
	default:
		return false
	}
}

// ParseCategory maps free-form category text onto the closed enumeration.
// Anything unrecognized (including empty) falls back to personal.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsValid() {
		return c
	}
	return CategoryPersonal
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// ParseFilter maps user-supplied filter text onto the enumeration.
func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return f, nil
}

// Task is the persisted unit of work. Only Completed is ever mutated
// after creation; every other field is write-once.
type Task struct {
	ID            string
	Text          string
	Completed     bool
	Category      Category
	CreatedAt     time.Time
	EstimatedTime string
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// Matches reports whether the task belongs in the given filtered view.
func (t Task) Matches(f Filter) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
