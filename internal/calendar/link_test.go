package calendar

import (
	"errors"
	"strings"
	"testing"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

func TestQuickAddURLExactFormat(t *testing.T) {
	got, err := QuickAddURL(model.CalendarEvent{
		Summary:     "Gym",
		Description: "Workout",
		StartTime:   "2024-01-01T10:00:00",
		EndTime:     "2024-01-01T11:00:00",
	})
	if err != nil {
		t.Fatalf("build link: %v", err)
	}
	want := "https://www.google.com/calendar/render?action=TEMPLATE" +
		"&text=Gym&details=Workout&dates=20240101T100000/20240101T110000"
	if got != want {
		t.Fatalf("url mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestQuickAddURLPercentEncodesText(t *testing.T) {
	got, err := QuickAddURL(model.CalendarEvent{
		Summary:     "Coffee & cake",
		Description: "with Ana 🌸",
		StartTime:   "2024-05-05T15:00:00Z",
		EndTime:     "2024-05-05T16:30:00Z",
	})
	if err != nil {
		t.Fatalf("build link: %v", err)
	}
	if !strings.Contains(got, "text=Coffee%20%26%20cake") {
		t.Fatalf("expected encoded summary, got %q", got)
	}
	if strings.Contains(got, "+") {
		t.Fatalf("expected %%20 for spaces, got %q", got)
	}
	if !strings.Contains(got, "dates=20240505T150000Z/20240505T163000Z") {
		t.Fatalf("expected compacted zulu timestamps, got %q", got)
	}
}

func TestQuickAddURLRejectsIncompleteEvents(t *testing.T) {
	_, err := QuickAddURL(model.CalendarEvent{
		Summary:   "Gym",
		StartTime: "2024-01-01T10:00:00",
		EndTime:   "2024-01-01T11:00:00",
	})
	if !errors.Is(err, ErrBadEvent) {
		t.Fatalf("expected ErrBadEvent for missing description, got: %v", err)
	}

	_, err = QuickAddURL(model.CalendarEvent{
		Summary:     "Gym",
		Description: "Workout",
		StartTime:   "-::-",
		EndTime:     "2024-01-01T11:00:00",
	})
	if !errors.Is(err, ErrBadEvent) {
		t.Fatalf("expected ErrBadEvent for timestamp that compacts away, got: %v", err)
	}
}
