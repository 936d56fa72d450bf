package ai

import (
	"fmt"
	"strings"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

// BuildSuggestPrompt asks the model to break a task into small steps.
func BuildSuggestPrompt(input string) string {
	return fmt.Sprintf(
		`Suggest a list of 3-5 sub-tasks or related actions for the following task: %q. `+
			`Make the tone super cute, encouraging, and helpful. Use emojis!`,
		input,
	)
}

// BuildEventPrompt asks the model to describe a task as a calendar
// event with ISO start/end times.
func BuildEventPrompt(task model.Task) string {
	var b strings.Builder

	b.WriteString("Convert this task into Google Calendar event details ")
	b.WriteString("(summary, description, and suggested start/end time in ISO format):\n")

	b.WriteString("task: ")
	b.WriteString(task.Text)
	b.WriteString("\n")

	b.WriteString("category: ")
	b.WriteString(string(task.Category))
	b.WriteString("\n")

	if task.EstimatedTime != "" {
		b.WriteString("estimated_time: ")
		b.WriteString(task.EstimatedTime)
		b.WriteString("\n")
	}

	if !task.CreatedAt.IsZero() {
		b.WriteString("created_at: ")
		b.WriteString(task.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
		b.WriteString("\n")
	}

	return b.String()
}
