package input

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a keyboard action that can be triggered by key bindings.
type Action int

const (
	// ActionNone represents no action (used when a key doesn't match any binding).
	ActionNone Action = iota

	// Navigation actions
	ActionCharacterForward  // Move cursor one character forward (Right, Ctrl+F)
	ActionCharacterBackward // Move cursor one character backward (Left, Ctrl+B)
	ActionWordForward       // Move cursor one word forward (Alt+F, Alt+Right)
	ActionWordBackward      // Move cursor one word backward (Alt+B, Alt+Left)
	ActionLineStart         // Move cursor to start of line (Home, Ctrl+A)
	ActionLineEnd           // Move cursor to end of line (End, Ctrl+E)

	// Deletion actions
	ActionDeleteCharacterBackward // Delete character before cursor (Backspace)
	ActionDeleteCharacterForward  // Delete character at cursor (Delete, Ctrl+D)
	ActionDeleteWordBackward      // Delete word before cursor (Ctrl+W, Alt+Backspace)
	ActionClear                   // Delete all text (Shift+Backspace, Ctrl+U)

	// Completion actions
	ActionComplete         // Cycle forward through completions (Tab)
	ActionCompleteBackward // Cycle backward through completions (Shift+Tab)

	// Special actions
	ActionSubmit  // Run the current line (Enter)
	ActionCancel  // Close without running (Escape, Ctrl+C)
	ActionRefresh // Rescan the search path (Ctrl+R)
	ActionPaste   // Paste from clipboard (Ctrl+V)
)

var actionNames = map[Action]string{
	ActionCharacterForward:        "character_forward",
	ActionCharacterBackward:       "character_backward",
	ActionWordForward:             "word_forward",
	ActionWordBackward:            "word_backward",
	ActionLineStart:               "line_start",
	ActionLineEnd:                 "line_end",
	ActionDeleteCharacterBackward: "delete_character_backward",
	ActionDeleteCharacterForward:  "delete_character_forward",
	ActionDeleteWordBackward:      "delete_word_backward",
	ActionClear:                   "clear",
	ActionComplete:                "complete",
	ActionCompleteBackward:        "complete_backward",
	ActionSubmit:                  "submit",
	ActionCancel:                  "cancel",
	ActionRefresh:                 "refresh",
	ActionPaste:                   "paste",
}

// String returns the configuration name of an Action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	if a == ActionNone {
		return "none"
	}
	return "unknown"
}

// ParseAction returns the Action with the given configuration name.
func ParseAction(name string) (Action, error) {
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown key binding action %q", name)
}

// KeyBinding represents a single key binding that maps a key to an action.
type KeyBinding struct {
	// Keys is the list of key sequences that trigger this binding.
	// Each string should be a valid tea.KeyMsg string representation.
	Keys []string
	// Action is the action to perform when this binding is triggered.
	Action Action
}

// KeyMap holds all key bindings for the input component.
type KeyMap struct {
	bindings []KeyBinding
	lookup   map[string]Action
}

// NewKeyMap creates a new KeyMap with the given bindings.
func NewKeyMap(bindings []KeyBinding) *KeyMap {
	km := &KeyMap{
		bindings: bindings,
	}
	km.rebuildLookup()
	return km
}

// rebuildLookup rebuilds the internal lookup map from the bindings.
// This must be called after any modification to bindings.
func (km *KeyMap) rebuildLookup() {
	km.lookup = make(map[string]Action)
	for _, b := range km.bindings {
		for _, k := range b.Keys {
			km.lookup[k] = b.Action
		}
	}
}

// DefaultKeyMap returns the launcher's default key bindings.
//
// Most terminals send the same byte for Shift+Backspace as for Backspace, so
// Ctrl+U is bound to clear as well.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		// Navigation
		{Keys: []string{"right", "ctrl+f"}, Action: ActionCharacterForward},
		{Keys: []string{"left", "ctrl+b"}, Action: ActionCharacterBackward},
		{Keys: []string{"alt+right", "ctrl+right", "alt+f"}, Action: ActionWordForward},
		{Keys: []string{"alt+left", "ctrl+left", "alt+b"}, Action: ActionWordBackward},
		{Keys: []string{"home", "ctrl+a"}, Action: ActionLineStart},
		{Keys: []string{"end", "ctrl+e"}, Action: ActionLineEnd},

		// Deletion
		{Keys: []string{"backspace", "ctrl+h"}, Action: ActionDeleteCharacterBackward},
		{Keys: []string{"delete", "ctrl+d"}, Action: ActionDeleteCharacterForward},
		{Keys: []string{"ctrl+w", "alt+backspace"}, Action: ActionDeleteWordBackward},
		{Keys: []string{"shift+backspace", "ctrl+u"}, Action: ActionClear},

		// Completion
		{Keys: []string{"tab"}, Action: ActionComplete},
		{Keys: []string{"shift+tab"}, Action: ActionCompleteBackward},

		// Special keys
		{Keys: []string{"enter"}, Action: ActionSubmit},
		{Keys: []string{"esc", "ctrl+c"}, Action: ActionCancel},
		{Keys: []string{"ctrl+r"}, Action: ActionRefresh},
		{Keys: []string{"ctrl+v"}, Action: ActionPaste},
	})
}

// Lookup finds the action for the given key message.
// Returns ActionNone if no binding matches.
func (km *KeyMap) Lookup(msg tea.KeyMsg) Action {
	if action, ok := km.lookup[msg.String()]; ok {
		return action
	}
	return ActionNone
}

// SetBinding adds or updates a key binding.
// If a binding for the same action already exists, it will be replaced.
func (km *KeyMap) SetBinding(binding KeyBinding) {
	for i, b := range km.bindings {
		if b.Action == binding.Action {
			km.bindings[i] = binding
			km.rebuildLookup()
			return
		}
	}
	km.bindings = append(km.bindings, binding)
	km.rebuildLookup()
}

// GetBinding returns the binding for the given action, or nil if not found.
func (km *KeyMap) GetBinding(action Action) *KeyBinding {
	for i := range km.bindings {
		if km.bindings[i].Action == action {
			return &km.bindings[i]
		}
	}
	return nil
}

// ApplyOverrides replaces the keys of the named actions. Overrides are
// applied in name order so the result does not depend on map iteration when
// two actions claim the same key.
func (km *KeyMap) ApplyOverrides(overrides map[string][]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return err
		}
		keys := make([]string, len(overrides[name]))
		copy(keys, overrides[name])
		km.SetBinding(KeyBinding{Keys: keys, Action: action})
	}
	return nil
}

// Keys returns the keys bound to action.
func (km *KeyMap) Keys(action Action) []string {
	if b := km.GetBinding(action); b != nil {
		keys := make([]string, len(b.Keys))
		copy(keys, b.Keys)
		return keys
	}
	return nil
}

var helpDescriptions = []struct {
	action Action
	desc   string
}{
	{ActionComplete, "complete"},
	{ActionCompleteBackward, "back"},
	{ActionClear, "clear"},
	{ActionSubmit, "run"},
	{ActionCancel, "close"},
}

// HelpBindings returns key.Binding values for the help footer, labelled with
// the first key bound to each action.
func (km *KeyMap) HelpBindings() []key.Binding {
	var result []key.Binding
	for _, h := range helpDescriptions {
		keys := km.Keys(h.action)
		if len(keys) == 0 {
			continue
		}
		result = append(result, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], h.desc),
		))
	}
	return result
}
