package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskItemData struct {
	ID            string
	Text          string
	Completed     bool
	Category      string
	EstimatedTime string
}

type TaskPanelData struct {
	Filter     string
	Items      []TaskItemData
	SelectedID string
	Remaining  int
}

type AssistantBubbleData struct {
	Message     string
	Busy        bool
	SpinnerView string
}

type CapturePanelData struct {
	InputView string
	CanAsk    bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

var categoryStyles = map[string]lipgloss.Style{
	"work":     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	"personal": lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	"health":   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	"social":   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
}

var doneStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("plans (%s):\n", data.Filter))
	b.WriteString("actions: [j/k]move [space]done [d]delete [s]calendar [tab]ask\n")
	if len(data.Items) == 0 {
		b.WriteString("  (nothing here yet, add a plan below!)")
		return b.String()
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		check := "[ ]"
		text := item.Text
		if item.Completed {
			check = "[x]"
			text = doneStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, check, categoryBadge(item.Category), text))
		if item.EstimatedTime != "" {
			b.WriteString(fmt.Sprintf(" (~%s)", item.EstimatedTime))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\n%d to go", data.Remaining))
	return strings.TrimSpace(b.String())
}

func RenderAssistantBubble(data AssistantBubbleData) string {
	var b strings.Builder
	b.WriteString("rosy:\n")
	if data.Busy && data.SpinnerView != "" {
		b.WriteString(data.SpinnerView + " ")
	}
	b.WriteString(data.Message)
	return strings.TrimSpace(b.String())
}

func RenderCapturePanel(data CapturePanelData) string {
	var b strings.Builder
	b.WriteString("new plan:\n")
	b.WriteString(data.InputView + "\n")
	if data.CanAsk {
		b.WriteString("actions: [enter]add [tab]ask rosy [esc]back")
	} else {
		b.WriteString("actions: [enter]add [esc]back")
	}
	return strings.TrimSpace(b.String())
}

func RenderFilterTabs(active string) string {
	tabs := []string{"active", "completed", "all"}
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("[%d]%s", i+1, tab)
		if tab == active {
			label = "*" + label
		}
		parts = append(parts, label)
	}
	return "filters: " + strings.Join(parts, " ")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func categoryBadge(category string) string {
	style, ok := categoryStyles[category]
	if !ok {
		style = categoryStyles["personal"]
	}
	return style.Render("[" + category + "]")
}
