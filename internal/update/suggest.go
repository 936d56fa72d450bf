package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/calendar"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/logging"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

func (m Model) startSuggest(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		m.Assistant = m.Assistant.InputNeeded()
		return m, nil
	}
	if m.suggester == nil {
		m.Assistant = m.Assistant.MagicMissing()
		return m, nil
	}
	if m.Assistant.Busy {
		m.Assistant = m.Assistant.StillBusy()
		return m, nil
	}
	m.Assistant = m.Assistant.Thinking()
	return m, tea.Batch(m.thinkSpinner.Tick, m.suggestCmd(input))
}

func (m Model) startPlanEvent(task model.Task) (tea.Model, tea.Cmd) {
	if m.suggester == nil {
		m.Assistant = m.Assistant.MagicMissing()
		return m, nil
	}
	if m.Assistant.Busy {
		m.Assistant = m.Assistant.StillBusy()
		return m, nil
	}
	m.Assistant = m.Assistant.EventPlanning()
	return m, tea.Batch(m.thinkSpinner.Tick, m.planEventCmd(task))
}

func (m Model) onSuggestResult(msg SuggestResultMsg) (tea.Model, tea.Cmd) {
	log := logging.WithOperation(m.logger, "suggest")
	if msg.Err != nil || len(msg.Suggestions) == 0 {
		m.Assistant = m.Assistant.SuggestFailed()
		if msg.Err != nil {
			m.LastError = msg.Err
			log.Error("suggest tasks", logging.Status(logging.StatusError), logging.Err(msg.Err))
		} else {
			log.Warn("suggest tasks returned nothing", logging.Status(logging.StatusError))
		}
		return m, nil
	}

	added := m.applySuggestions(msg.Suggestions)
	m.Mode = ModeList
	m.captureInput.Blur()
	m.captureInput.SetValue("")
	m.Cursor = 0
	m.Assistant = m.Assistant.SuggestionsApplied(msg.Input, added)
	log.Info("applied suggestions", logging.Status(logging.StatusSuccess), logging.Count(added))
	m.persistTasks()
	return m, nil
}

func (m Model) onCalendarLink(msg CalendarLinkMsg) (tea.Model, tea.Cmd) {
	log := logging.WithOperation(m.logger, "sync")
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Assistant = m.Assistant.EventFailed()
		log.Error("plan event", logging.Status(logging.StatusError), logging.TaskID(msg.TaskID), logging.Err(msg.Err))
		return m, nil
	}
	m.Assistant = m.Assistant.EventReady()
	log.Info("calendar link ready", logging.Status(logging.StatusSuccess), logging.TaskID(msg.TaskID))
	if err := m.opener.Open(msg.URL); err != nil {
		m.Status = StatusBar{Text: "could not open your browser", IsError: true}
		log.Error("open browser", logging.Status(logging.StatusError), logging.Err(err))
	}
	return m, nil
}

func (m Model) suggestCmd(input string) tea.Cmd {
	suggester := m.suggester
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := contextWithOptionalTimeout(context.Background(), timeout)
		defer cancel()
		suggestions, err := suggester.SuggestTasks(ctx, input)
		return SuggestResultMsg{Input: input, Suggestions: suggestions, Err: err}
	}
}

func (m Model) planEventCmd(task model.Task) tea.Cmd {
	suggester := m.suggester
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := contextWithOptionalTimeout(context.Background(), timeout)
		defer cancel()
		event, err := suggester.PlanEvent(ctx, task)
		if err != nil {
			return CalendarLinkMsg{TaskID: task.ID, Err: err}
		}
		url, err := calendar.QuickAddURL(event)
		return CalendarLinkMsg{TaskID: task.ID, URL: url, Err: err}
	}
}

func (m Model) requestContext() (context.Context, context.CancelFunc) {
	return contextWithOptionalTimeout(context.Background(), m.timeout)
}

func contextWithOptionalTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
