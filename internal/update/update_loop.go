package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/logging"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.store != nil {
		return m.loadTasksCmd()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if nm, ok := next.(Model); ok {
		nm.syncBubbleData()
		return nm, cmd
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}
		if m.Mode == ModeCapture && typed.String() != "ctrl+c" {
			return m.handleCaptureKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Capture, "enter":
			m.enterCaptureMode()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleListKey(typed)
	case spinner.TickMsg:
		if m.spinnerActive {
			var cmd tea.Cmd
			m.thinkSpinner, cmd = m.thinkSpinner.Update(typed)
			return m, cmd
		}
	case TasksLoadedMsg:
		return m.onTasksLoaded(typed)
	case SuggestResultMsg:
		return m.onSuggestResult(typed)
	case CalendarLinkMsg:
		return m.onCalendarLink(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", logging.Err(typed.Err))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	taskPane := m.renderTaskPane()
	if m.Mode == ModeCapture {
		taskPane = views.RenderCapturePanel(views.CapturePanelData{
			InputView: m.captureInput.View(),
			CanAsk:    m.suggester != nil,
		}) + "\n\n" + taskPane
	}

	overlay := strings.TrimSpace(strings.Join([]string{
		views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		m.renderHelpIfVisible(),
	}, "\n"))

	spinnerView := ""
	if m.spinnerActive {
		spinnerView = m.thinkSpinner.View()
	}

	return views.RenderApp(views.AppData{
		Header: "rosy plans ✿ your magical to-do list",
		AssistantPane: views.RenderAssistantBubble(views.AssistantBubbleData{
			Message:     m.Assistant.Message,
			Busy:        m.Assistant.Busy,
			SpinnerView: spinnerView,
		}),
		TaskPane:   taskPane,
		StatusLine: status,
		Overlay:    overlay,
		Footer: fmt.Sprintf("keys: %s add | 1/2/3 filter | / cmd | %s help | %s quit",
			m.Keys.Capture, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderTaskPane() string {
	visible := m.Tasks.Filtered(m.Filter)
	items := make([]views.TaskItemData, 0, len(visible))
	for _, t := range visible {
		items = append(items, views.TaskItemData{
			ID:            t.ID,
			Text:          t.Text,
			Completed:     t.Completed,
			Category:      string(t.Category),
			EstimatedTime: t.EstimatedTime,
		})
	}
	selectedID := ""
	if task, ok := m.selectedTask(); ok {
		selectedID = task.ID
	}
	panel := views.RenderTaskPanel(views.TaskPanelData{
		Filter:     string(m.Filter),
		Items:      items,
		SelectedID: selectedID,
		Remaining:  m.Tasks.Len() - m.Tasks.CompletedCount(),
	})
	return views.RenderFilterTabs(string(m.Filter)) + "\n" + panel
}
