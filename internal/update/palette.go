package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/commands"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var followup tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.addTask(a.Text)
			return commands.Result{Message: fmt.Sprintf("added plan: %s", a.Text)}, nil
		},
		Suggest: func(s commands.SuggestArgs) (commands.Result, error) {
			next, teaCmd := m.startSuggest(s.Text)
			m = next.(Model)
			followup = teaCmd
			return commands.Result{Message: fmt.Sprintf("asking rosy about: %s", s.Text)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			parsed, err := model.ParseFilter(f.Filter)
			if err != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "filter must be one of: all, active, completed",
				}
			}
			m.setFilter(parsed)
			return commands.Result{Message: fmt.Sprintf("showing %s plans", parsed)}, nil
		},
		Sync: func(s commands.SyncArgs) (commands.Result, error) {
			if s.Target != "selected" {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "sync currently supports target: selected",
				}
			}
			task, ok := m.selectedTask()
			if !ok {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "no plan selected to sync",
				}
			}
			next, teaCmd := m.startPlanEvent(task)
			m = next.(Model)
			followup = teaCmd
			return commands.Result{Message: fmt.Sprintf("planning calendar event for %q", task.Text)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			switch d.Target {
			case "selected":
				task, ok := m.selectedTask()
				if !ok {
					return commands.Result{}, &commands.CommandError{
						Code:    commands.ErrCodeInvalidArgument,
						Message: "no plan selected to delete",
					}
				}
				m.Tasks.Remove(task.ID)
				m.persistTasks()
				return commands.Result{Message: fmt.Sprintf("removed %q", task.Text)}, nil
			case "completed":
				removed := 0
				for _, task := range m.Tasks.Filtered(model.FilterCompleted) {
					if m.Tasks.Remove(task.ID) {
						removed++
					}
				}
				m.persistTasks()
				return commands.Result{Message: fmt.Sprintf("removed %d completed plan(s)", removed)}, nil
			default:
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "delete supports targets: selected, completed",
				}
			}
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else if res.Message != "" {
		m.Status = StatusBar{Text: res.Message}
	}
	return m, followup
}
