package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/logging"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/storage"
)

func (m *Model) enterCaptureMode() {
	m.Mode = ModeCapture
	m.captureInput.Focus()
	m.Assistant = m.Assistant.ComposePrompt()
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Mode = ModeList
		m.captureInput.Blur()
		m.Status = StatusBar{Text: "list mode"}
		return m, nil
	case "enter":
		m.addTask(m.captureInput.Value())
		m.captureInput.SetValue("")
		return m, nil
	case "tab":
		input := strings.TrimSpace(m.captureInput.Value())
		return m.startSuggest(input)
	}
	var cmd tea.Cmd
	m.captureInput, cmd = m.captureInput.Update(msg)
	_ = cmd
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.Tasks.Filtered(m.Filter)
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(visible)-1 {
			m.Cursor++
		}
	case " ":
		return m.toggleSelected()
	case "d":
		return m.deleteSelected()
	case "s":
		task, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "no task selected"}
			return m, nil
		}
		return m.startPlanEvent(task)
	case "1":
		m.setFilter(model.FilterActive)
	case "2":
		m.setFilter(model.FilterCompleted)
	case "3":
		m.setFilter(model.FilterAll)
	}
	return m, nil
}

func (m *Model) setFilter(f model.Filter) {
	m.Filter = f
	m.Cursor = 0
	if f == model.FilterCompleted {
		m.Assistant = m.Assistant.Achievements(m.Tasks.CompletedCount())
	}
	m.Status = StatusBar{Text: fmt.Sprintf("showing %s plans", f)}
}

func (m *Model) addTask(text string) {
	task, ok := m.Tasks.Create(text, model.CategoryPersonal, "")
	if !ok {
		m.Assistant = m.Assistant.InputNeeded()
		return
	}
	m.Mode = ModeList
	m.captureInput.Blur()
	m.Cursor = 0
	m.Assistant = m.Assistant.TaskAdded(task.Text)
	m.persistTasks()
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	updated, ok := m.Tasks.Toggle(task.ID)
	if !ok {
		return m, nil
	}
	if updated.Completed {
		m.Assistant = m.Assistant.Celebrate()
	}
	m.persistTasks()
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if m.Tasks.Remove(task.ID) {
		m.Status = StatusBar{Text: fmt.Sprintf("removed %q", task.Text)}
		m.persistTasks()
	}
	return m, nil
}

// applySuggestions prepends in reverse so the first suggestion ends up
// on top of the list.
func (m *Model) applySuggestions(suggestions []model.Suggestion) int {
	added := 0
	for i := len(suggestions) - 1; i >= 0; i-- {
		s := suggestions[i]
		if _, ok := m.Tasks.Create(s.Task, s.Category, s.EstimatedTime); ok {
			added++
		}
	}
	return added
}

func (m Model) onTasksLoaded(msg TasksLoadedMsg) (tea.Model, tea.Cmd) {
	m.Tasks.Replace(msg.Tasks)
	m.Cursor = 0
	log := logging.WithOperation(m.logger, "load")
	if msg.Err != nil {
		m.LastError = msg.Err
		if errors.Is(msg.Err, storage.ErrCorrupt) {
			m.Status = StatusBar{Text: "saved plans were unreadable, starting fresh", IsError: true}
		} else {
			m.Status = StatusBar{Text: msg.Err.Error(), IsError: true}
		}
		log.Error("load tasks", logging.Status(logging.StatusError), logging.Err(msg.Err))
		return m, nil
	}
	log.Info("loaded tasks", logging.Status(logging.StatusSuccess), logging.Count(len(msg.Tasks)))
	return m, nil
}

func (m *Model) persistTasks() {
	if m.store == nil {
		return
	}
	ctx, cancel := m.requestContext()
	defer cancel()
	tasks := m.Tasks.All()
	log := logging.WithOperation(m.logger, "save")
	if err := m.store.Save(ctx, tasks); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "could not save your plans", IsError: true}
		log.Error("save tasks", logging.Status(logging.StatusError), logging.Err(err))
		return
	}
	log.Info("saved tasks", logging.Status(logging.StatusSuccess), logging.Count(len(tasks)))
}

func (m Model) loadTasksCmd() tea.Cmd {
	store := m.store
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := contextWithOptionalTimeout(context.Background(), timeout)
		defer cancel()
		tasks, err := store.Load(ctx)
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}
