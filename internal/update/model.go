package update

import (
	"context"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/assistant"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/storage"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/tasklist"
)

type Mode string

const (
	ModeList    Mode = "List"
	ModeCapture Mode = "Capture"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Capture string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Suggester is the slice of the AI client the update loop needs, kept
// as an interface so tests can swap in a fake.
type Suggester interface {
	SuggestTasks(ctx context.Context, input string) ([]model.Suggestion, error)
	PlanEvent(ctx context.Context, task model.Task) (model.CalendarEvent, error)
}

// BrowserOpener hands a calendar URL to the desktop browser.
type BrowserOpener interface {
	Open(url string) error
}

type NoopBrowserOpener struct{}

func (NoopBrowserOpener) Open(string) error { return nil }

type ExecBrowserOpener struct{}

func (ExecBrowserOpener) Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Run()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Run()
	default:
		return exec.Command("xdg-open", url).Run()
	}
}

type Model struct {
	Mode        Mode
	Filter      model.Filter
	Tasks       *tasklist.List
	Cursor      int
	Assistant   assistant.State
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	store     storage.Store
	suggester Suggester
	opener    BrowserOpener
	logger    *slog.Logger
	timeout   time.Duration

	captureInput  textinput.Model
	commandInput  textinput.Model
	thinkSpinner  spinner.Model
	helpModel     help.Model
	spinnerActive bool
}

type TasksLoadedMsg struct {
	Tasks []model.Task
	Err   error
}

type SuggestResultMsg struct {
	Input       string
	Suggestions []model.Suggestion
	Err         error
}

type CalendarLinkMsg struct {
	TaskID string
	URL    string
	Err    error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	m := Model{
		Mode:      ModeList,
		Filter:    model.FilterActive,
		Tasks:     tasklist.New(),
		Assistant: assistant.Greeting(),
		Keys: GlobalKeyMap{
			Capture: "a",
			Help:    "?",
			Quit:    "q",
		},
		opener: NoopBrowserOpener{},
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(store storage.Store, suggester Suggester, opener BrowserOpener, logger *slog.Logger, cfg RuntimeConfig) Model {
	m := NewModel()
	m.store = store
	m.suggester = suggester
	if opener != nil {
		m.opener = opener
	}
	if logger != nil {
		m.logger = logger
	}
	m.timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	return m
}

func (m *Model) initBubbleComponents() {
	m.captureInput = textinput.New()
	m.captureInput.Prompt = "plan> "
	m.captureInput.Placeholder = "What are we planning today?"
	m.captureInput.CharLimit = 256
	m.captureInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.thinkSpinner = spinner.New()
	m.thinkSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	m.spinnerActive = m.Assistant.Busy
	visible := m.Tasks.Filtered(m.Filter)
	if len(visible) == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= len(visible) {
		m.Cursor = len(visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// selectedTask resolves the cursor against the filtered projection.
func (m Model) selectedTask() (model.Task, bool) {
	visible := m.Tasks.Filtered(m.Filter)
	if len(visible) == 0 || m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}
