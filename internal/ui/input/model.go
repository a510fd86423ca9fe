// Package input provides the Bubble Tea popup used by the tui backend: a
// single-line editor with tab cycling over the command index.
package input

import (
	"strings"
	"unicode/utf8"

	"github.com/atinylittleshell/launchbox/internal/completion"
	"github.com/atinylittleshell/launchbox/internal/pathscan"
	"github.com/atinylittleshell/launchbox/internal/session"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// ResultType indicates how the popup was closed.
type ResultType int

const (
	// ResultNone indicates no result yet (still editing).
	ResultNone ResultType = iota
	// ResultSubmit indicates the user submitted a command line (Enter).
	ResultSubmit
	// ResultCancel indicates the user closed the popup without running anything.
	ResultCancel
)

// Result contains the outcome of a popup session.
type Result struct {
	// Type indicates what action caused the popup to close.
	Type ResultType
	// Value is the trimmed command line (empty unless submitted).
	Value string
}

// Config holds configuration for creating a new Model.
type Config struct {
	// Session drives completion. Required.
	Session *session.Session

	// Prompt is the prompt string to display.
	Prompt string

	// KeyMap provides key bindings. If nil, DefaultKeyMap is used.
	KeyMap *KeyMap

	// RenderConfig provides styling. If nil, DefaultRenderConfig is used.
	RenderConfig *RenderConfig

	// MaxVisible is the number of completion candidates shown at once.
	MaxVisible int

	// Bell is called when a completion request has no match. Optional.
	Bell func()

	// Rescan rebuilds the session's command index. Optional.
	Rescan func(*session.Session)

	// Validate checks a line before it is submitted. A non-nil error keeps
	// the popup open and is shown under the input. Optional.
	Validate func(string) error

	// Width and Height are the initial terminal size, if known.
	Width  int
	Height int

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Model is the Bubble Tea model for the launcher popup.
type Model struct {
	buffer  *Buffer
	keymap  *KeyMap
	session *session.Session
	prompt  string

	maxVisible int
	bell       func()
	rescan     func(*session.Session)
	validate   func(string) error

	renderer *Renderer
	errMsg   string

	result Result
	logger *zap.Logger
}

// New creates a new popup Model with the given configuration.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keymap := cfg.KeyMap
	if keymap == nil {
		keymap = DefaultKeyMap()
	}

	renderConfig := cfg.RenderConfig
	if renderConfig == nil {
		defaultConfig := DefaultRenderConfig()
		renderConfig = &defaultConfig
	}

	sess := cfg.Session
	if sess == nil {
		sess = session.New(pathscan.Index{}, logger)
	}

	maxVisible := cfg.MaxVisible
	if maxVisible <= 0 {
		maxVisible = 5
	}

	renderer := NewRenderer(*renderConfig)
	renderer.SetSize(cfg.Width, cfg.Height)

	return Model{
		buffer:     NewBuffer(),
		keymap:     keymap,
		session:    sess,
		prompt:     cfg.Prompt,
		maxVisible: maxVisible,
		bell:       cfg.Bell,
		rescan:     cfg.Rescan,
		validate:   cfg.Validate,
		renderer:   renderer,
		result:     Result{Type: ResultNone},
		logger:     logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.result.Type != ResultNone {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case pasteMsg:
		return m.insertRunes([]rune(string(msg)))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.result.Type != ResultNone {
		return ""
	}

	state := m.activeState()
	return m.renderer.RenderPopup(PopupView{
		Prompt:        m.prompt,
		Buffer:        m.buffer,
		CompletedFrom: m.completedFrom(state),
		Completion:    state,
		MaxVisible:    m.maxVisible,
		Status:        m.status(state),
		Error:         m.errMsg,
		Help:          m.keymap.HelpBindings(),
	})
}

// Result returns the current result. Check Type != ResultNone to see if complete.
func (m Model) Result() Result {
	return m.result
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.buffer.Text()
}

// SetValue sets the input text and moves the cursor to the end.
func (m *Model) SetValue(text string) {
	m.buffer.SetText(text)
	m.session.Invalidate()
}

// Buffer returns the underlying buffer (for testing).
func (m Model) Buffer() *Buffer {
	return m.buffer
}

// Err returns the message shown under the input, if any.
func (m Model) Err() string {
	return m.errMsg
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.Lookup(msg)

	switch action {
	case ActionComplete:
		return m.handleComplete(completion.Forward)

	case ActionCompleteBackward:
		return m.handleComplete(completion.Backward)

	case ActionSubmit:
		return m.handleSubmit()

	case ActionCancel:
		m.result = Result{Type: ResultCancel}
		m.logger.Debug("popup cancelled")
		return m, tea.Quit

	case ActionClear:
		m.buffer.SetText(m.session.Clear())
		m.errMsg = ""
		return m, nil

	case ActionRefresh:
		if m.rescan != nil {
			m.rescan(m.session)
		}
		m.session.Invalidate()
		return m, nil

	case ActionPaste:
		return m, Paste

	case ActionCharacterForward:
		m.buffer.SetPos(m.buffer.Pos() + 1)
		return m, nil

	case ActionCharacterBackward:
		m.buffer.SetPos(m.buffer.Pos() - 1)
		return m, nil

	case ActionWordForward:
		m.buffer.WordForward()
		return m, nil

	case ActionWordBackward:
		m.buffer.WordBackward()
		return m, nil

	case ActionLineStart:
		m.buffer.CursorStart()
		return m, nil

	case ActionLineEnd:
		m.buffer.CursorEnd()
		return m, nil

	case ActionDeleteCharacterBackward:
		if m.buffer.DeleteCharBackward() {
			m.onTextChanged()
		}
		return m, nil

	case ActionDeleteCharacterForward:
		if m.buffer.DeleteCharForward() {
			m.onTextChanged()
		}
		return m, nil

	case ActionDeleteWordBackward:
		if m.buffer.DeleteWordBackward() {
			m.onTextChanged()
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return m.insertRunes(msg.Runes)
	}
	return m, nil
}

// handleComplete advances the completion cycle. Completion always works on
// the whole line, so the cursor ends up at the end of the text.
func (m Model) handleComplete(dir completion.Direction) (tea.Model, tea.Cmd) {
	text, ok := m.session.Complete(m.buffer.Text(), dir)
	if !ok {
		return m, m.ring()
	}
	m.buffer.SetText(text)
	m.errMsg = ""
	return m, nil
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.buffer.Text())
	if line == "" {
		return m, nil
	}

	if m.validate != nil {
		if err := m.validate(line); err != nil {
			m.logger.Debug("line rejected", zap.String("line", line), zap.Error(err))
			m.errMsg = err.Error()
			return m, nil
		}
	}

	m.result = Result{Type: ResultSubmit, Value: line}
	return m, tea.Quit
}

func (m Model) insertRunes(runes []rune) (tea.Model, tea.Cmd) {
	runes = sanitizeRunes(runes)
	if len(runes) == 0 {
		return m, nil
	}
	m.buffer.InsertRunes(runes)
	m.onTextChanged()
	return m, nil
}

// onTextChanged drops the completion cycle after any edit to the text.
func (m *Model) onTextChanged() {
	m.session.Invalidate()
	m.errMsg = ""
}

func (m Model) ring() tea.Cmd {
	if m.bell == nil {
		return nil
	}
	bell := m.bell
	return func() tea.Msg {
		bell()
		return nil
	}
}

// activeState returns the completion state if it still describes the text.
func (m Model) activeState() *completion.State {
	state := m.session.State()
	if !state.Valid(m.buffer.Text()) {
		return nil
	}
	return state
}

// completedFrom returns the rune index where the completed suffix of the
// trailing word starts, or -1 when nothing is selected.
func (m Model) completedFrom(state *completion.State) int {
	if state == nil || state.Selected() < 0 {
		return -1
	}
	text := m.buffer.Text()
	offset := state.Start() + len(state.Prefix())
	if offset > len(text) {
		return -1
	}
	return utf8.RuneCountInString(text[:offset])
}

func (m Model) status(state *completion.State) string {
	commands := humanize.Comma(int64(m.session.Index().Len())) + " commands"
	if pos := FormatPosition(state); pos != "" {
		return pos + " · " + commands
	}
	return commands
}

// pasteMsg is sent when paste content is available.
type pasteMsg string

// Paste returns a command that reads from the clipboard.
func Paste() tea.Msg {
	str, err := clipboard.ReadAll()
	if err != nil {
		return nil
	}
	return pasteMsg(str)
}

// sanitizeRunes replaces tabs and newlines with spaces.
func sanitizeRunes(runes []rune) []rune {
	result := make([]rune, len(runes))
	for i, r := range runes {
		switch r {
		case '\t', '\n', '\r':
			result[i] = ' '
		default:
			result[i] = r
		}
	}
	return result
}
