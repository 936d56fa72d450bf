package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.allBindings()
	var md strings.Builder
	for _, kb := range bindings {
		md.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: []string{views.RenderMarkdown(md.String())},
		HelpView: m.helpModel.View(helpKeyMap{
			short: m.helpBindings(),
			full:  [][]key.Binding{m.helpBindings()},
		}),
	})
}

func (m Model) allBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Capture, Action: "add a new plan"},
		{Key: "tab", Action: "ask Rosy for sub-tasks (while typing)"},
		{Key: "j/k", Action: "move selection"},
		{Key: "space", Action: "toggle done"},
		{Key: "d", Action: "delete selected plan"},
		{Key: "s", Action: "send selected plan to Google Calendar"},
		{Key: "1/2/3", Action: "filter active/completed/all"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) helpBindings() []key.Binding {
	all := m.allBindings()
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
