package line

import (
	"github.com/atinylittleshell/launchbox/internal/completion"
	"github.com/atinylittleshell/launchbox/internal/session"
	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

// pendingAction is a launcher action captured by the input filter and
// carried out by the listener once readline hands over the line.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingForward
	pendingBackward
	pendingClear
	pendingRefresh
)

// editor adapts a session to readline's filter and listener hooks.
//
// The filter turns launcher keys into CharBell, which readline treats as a
// no-op, and remembers the action. The listener is then called with the
// current line and applies it.
type editor struct {
	session *session.Session
	bell    func()
	rescan  func(*session.Session)
	logger  *zap.Logger

	pending pendingAction
	last    string
}

func newEditor(s *session.Session, bell func(), rescan func(*session.Session), logger *zap.Logger) *editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &editor{
		session: s,
		bell:    bell,
		rescan:  rescan,
		logger:  logger,
	}
}

// filter implements readline's FuncFilterInputRune.
func (e *editor) filter(r rune) (rune, bool) {
	switch r {
	case readline.CharTab:
		e.pending = pendingForward
	case readline.CharPrev:
		e.pending = pendingBackward
	case readline.CharCtrlU:
		e.pending = pendingClear
	case readline.CharBckSearch:
		e.pending = pendingRefresh
	default:
		return r, true
	}
	return readline.CharBell, true
}

// OnChange implements readline.Listener.
func (e *editor) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	text := string(line)

	if key == readline.CharBell && e.pending != pendingNone {
		action := e.pending
		e.pending = pendingNone
		return e.apply(action, text)
	}

	if text != e.last {
		e.session.Invalidate()
		e.last = text
	}
	return nil, 0, false
}

func (e *editor) apply(action pendingAction, text string) ([]rune, int, bool) {
	switch action {
	case pendingForward, pendingBackward:
		dir := completion.Forward
		if action == pendingBackward {
			dir = completion.Backward
		}
		result, ok := e.session.Complete(text, dir)
		if !ok {
			e.ring()
			return nil, 0, false
		}
		return e.set(result)

	case pendingClear:
		return e.set(e.session.Clear())

	case pendingRefresh:
		if e.rescan != nil {
			e.rescan(e.session)
		}
		e.session.Invalidate()
	}
	return nil, 0, false
}

// set replaces the line and puts the cursor at its end.
func (e *editor) set(text string) ([]rune, int, bool) {
	e.last = text
	runes := []rune(text)
	return runes, len(runes), true
}

func (e *editor) ring() {
	if e.bell != nil {
		e.bell()
	}
}
