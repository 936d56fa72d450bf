package tasklist

import (
	"fmt"
	"testing"
	"time"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

func pinnedList() *List {
	n := 0
	return NewWithGenerators(
		func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		},
		func() time.Time {
			return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		},
	)
}

func TestCreateRejectsBlankText(t *testing.T) {
	l := pinnedList()
	if _, ok := l.Create("", model.CategoryPersonal, ""); ok {
		t.Fatal("expected empty text to be rejected")
	}
	if _, ok := l.Create("   ", model.CategoryPersonal, ""); ok {
		t.Fatal("expected whitespace text to be rejected")
	}
	if l.Len() != 0 {
		t.Fatalf("expected empty list, got %d tasks", l.Len())
	}
}

func TestCreatePrependsWithFreshID(t *testing.T) {
	l := pinnedList()
	first, ok := l.Create("Buy milk", model.CategoryPersonal, "")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if first.Completed {
		t.Fatal("expected new task to start incomplete")
	}
	second, ok := l.Create("  Go for a run  ", model.CategoryHealth, "30 minutes")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if second.Text != "Go for a run" {
		t.Fatalf("expected trimmed text, got %q", second.Text)
	}
	if second.ID == first.ID {
		t.Fatalf("expected fresh unique id, both are %q", second.ID)
	}

	all := l.All()
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected most-recent-first order, got %#v", all)
	}
}

func TestCreateCoercesUnknownCategory(t *testing.T) {
	l := pinnedList()
	task, ok := l.Create("Plan dinner", model.Category("mystery"), "")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if task.Category != model.CategoryPersonal {
		t.Fatalf("expected personal fallback, got %q", task.Category)
	}
}

func TestToggleIsIdempotentUnderTwoCalls(t *testing.T) {
	l := pinnedList()
	task, _ := l.Create("Buy milk", model.CategoryPersonal, "")

	flipped, ok := l.Toggle(task.ID)
	if !ok || !flipped.Completed {
		t.Fatalf("expected toggle to complete the task, got ok=%v task=%#v", ok, flipped)
	}
	back, ok := l.Toggle(task.ID)
	if !ok || back.Completed {
		t.Fatalf("expected second toggle to restore, got ok=%v task=%#v", ok, back)
	}

	if _, ok := l.Toggle("nope"); ok {
		t.Fatal("expected unknown id toggle to be a no-op")
	}
}

func TestRemove(t *testing.T) {
	l := pinnedList()
	a, _ := l.Create("one", model.CategoryWork, "")
	b, _ := l.Create("two", model.CategoryWork, "")

	if l.Remove("nope") {
		t.Fatal("expected unknown id remove to be a no-op")
	}
	if l.Len() != 2 {
		t.Fatalf("expected list unchanged, got %d", l.Len())
	}

	if !l.Remove(a.ID) || !l.Remove(b.ID) {
		t.Fatal("expected removes to succeed")
	}
	if l.Len() != 0 {
		t.Fatalf("expected empty list after removing all, got %d", l.Len())
	}
}

func TestFilteredPartitionsList(t *testing.T) {
	l := pinnedList()
	for i := 0; i < 5; i++ {
		task, _ := l.Create(fmt.Sprintf("task %d", i), model.CategoryWork, "")
		if i%2 == 0 {
			l.Toggle(task.ID)
		}
	}

	all := l.Filtered(model.FilterAll)
	active := l.Filtered(model.FilterActive)
	completed := l.Filtered(model.FilterCompleted)
	if len(all) != len(active)+len(completed) {
		t.Fatalf("partition broken: all=%d active=%d completed=%d", len(all), len(active), len(completed))
	}

	// Filtering preserves relative order.
	for i := 1; i < len(active); i++ {
		if active[i-1].CreatedAt.Before(active[i].CreatedAt) {
			t.Fatal("expected order-preserving projection")
		}
	}
}

func TestCompleteScenario(t *testing.T) {
	l := pinnedList()
	task, ok := l.Create("Buy milk", model.CategoryPersonal, "")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if _, ok := l.Toggle(task.ID); !ok {
		t.Fatal("expected toggle to succeed")
	}
	if got := len(l.Filtered(model.FilterCompleted)); got != 1 {
		t.Fatalf("expected 1 completed task, got %d", got)
	}
	if got := len(l.Filtered(model.FilterActive)); got != 0 {
		t.Fatalf("expected 0 active tasks, got %d", got)
	}
	if l.CompletedCount() != 1 {
		t.Fatalf("expected completed count 1, got %d", l.CompletedCount())
	}
}

func TestReplacePreservesOrder(t *testing.T) {
	l := pinnedList()
	loaded := []model.Task{
		{ID: "x", Text: "newest", Category: model.CategoryWork, CreatedAt: time.Now()},
		{ID: "y", Text: "oldest", Category: model.CategoryWork, CreatedAt: time.Now()},
	}
	l.Replace(loaded)
	all := l.All()
	if len(all) != 2 || all[0].ID != "x" || all[1].ID != "y" {
		t.Fatalf("expected loaded order preserved, got %#v", all)
	}
}
