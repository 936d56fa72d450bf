package assistant

import (
	"strings"
	"testing"
)

func TestGreetingIsNotBusy(t *testing.T) {
	s := Greeting()
	if s.Busy {
		t.Fatal("expected greeting state to be idle")
	}
	if s.Message == "" {
		t.Fatal("expected a greeting message")
	}
}

func TestBusyTransitions(t *testing.T) {
	for name, s := range map[string]State{
		"thinking":  Greeting().Thinking(),
		"planning":  Greeting().EventPlanning(),
		"stillBusy": Greeting().Thinking().StillBusy(),
	} {
		if !s.Busy {
			t.Fatalf("expected %s state to be busy", name)
		}
	}
}

func TestTerminalTransitionsClearBusy(t *testing.T) {
	busy := Greeting().Thinking()
	for name, s := range map[string]State{
		"applied":     busy.SuggestionsApplied("get fit", 3),
		"failed":      busy.SuggestFailed(),
		"eventReady":  busy.EventReady(),
		"eventFailed": busy.EventFailed(),
		"celebrate":   busy.Celebrate(),
		"added":       busy.TaskAdded("x"),
	} {
		if s.Busy {
			t.Fatalf("expected %s transition to clear the busy flag", name)
		}
	}
}

func TestMessagesReferenceTheirSubject(t *testing.T) {
	s := Greeting().TaskAdded("Buy milk")
	if !strings.Contains(s.Message, `"Buy milk"`) {
		t.Fatalf("expected added message to quote the task, got %q", s.Message)
	}

	s = s.SuggestionsApplied("get fit", 4)
	if !strings.Contains(s.Message, `"get fit"`) || !strings.Contains(s.Message, "4") {
		t.Fatalf("expected summary to quote input and count, got %q", s.Message)
	}

	s = s.Achievements(7)
	if !strings.Contains(s.Message, "7") {
		t.Fatalf("expected achievements message to carry the count, got %q", s.Message)
	}
}
