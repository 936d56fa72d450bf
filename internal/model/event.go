package model

import (
	"fmt"
	"strings"
)

// Suggestion is one element of the assistant's decoded reply for a
// task-breakdown request. Ephemeral; never persisted.
type Suggestion struct {
	Task          string
	Category      Category
	EstimatedTime string
}

// CalendarEvent is the assistant's decoded reply for a calendar-sync
// request. The timestamps are carried verbatim as ISO-8601 text; no
// local scheduling logic interprets them.
type CalendarEvent struct {
	Summary     string
	Description string
	StartTime   string
	EndTime     string
}

func (e CalendarEvent) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"summary", e.Summary},
		{"description", e.Description},
		{"startTime", e.StartTime},
		{"endTime", e.EndTime},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("model: calendar event %s is required", field.name)
		}
	}
	return nil
}
