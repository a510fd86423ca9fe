package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionCharacterForward, "character_forward"},
		{ActionDeleteWordBackward, "delete_word_backward"},
		{ActionClear, "clear"},
		{ActionComplete, "complete"},
		{ActionCompleteBackward, "complete_backward"},
		{ActionSubmit, "submit"},
		{ActionCancel, "cancel"},
		{ActionRefresh, "refresh"},
		{ActionPaste, "paste"},
		{Action(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("Action.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for action, name := range actionNames {
		got, err := ParseAction(name)
		if err != nil {
			t.Errorf("ParseAction(%q) returned error: %v", name, err)
			continue
		}
		if got != action {
			t.Errorf("ParseAction(%q) = %v, want %v", name, got, action)
		}
	}

	if _, err := ParseAction("launch_rockets"); err == nil {
		t.Error("ParseAction should fail for an unknown name")
	}
}

func TestDefaultKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Action
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, ActionComplete},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, ActionCompleteBackward},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionSubmit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionCancel},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionCancel},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, ActionClear},
		{"ctrl+w", tea.KeyMsg{Type: tea.KeyCtrlW}, ActionDeleteWordBackward},
		{"alt+backspace", tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, ActionDeleteWordBackward},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, ActionDeleteCharacterBackward},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, ActionRefresh},
		{"ctrl+v", tea.KeyMsg{Type: tea.KeyCtrlV}, ActionPaste},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Lookup(tt.msg); got != tt.expected {
				t.Errorf("Lookup(%q) = %v, want %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestDefaultKeyMapClearKeys(t *testing.T) {
	km := DefaultKeyMap()
	keys := km.Keys(ActionClear)
	if len(keys) != 2 || keys[0] != "shift+backspace" || keys[1] != "ctrl+u" {
		t.Errorf("clear keys = %v, want [shift+backspace ctrl+u]", keys)
	}
}

func TestSetBindingReplaces(t *testing.T) {
	km := DefaultKeyMap()
	km.SetBinding(KeyBinding{Keys: []string{"ctrl+n"}, Action: ActionComplete})

	if got := km.Lookup(tea.KeyMsg{Type: tea.KeyCtrlN}); got != ActionComplete {
		t.Errorf("ctrl+n should complete, got %v", got)
	}
	if got := km.Lookup(tea.KeyMsg{Type: tea.KeyTab}); got != ActionNone {
		t.Errorf("tab should no longer be bound, got %v", got)
	}
}

func TestApplyOverrides(t *testing.T) {
	km := DefaultKeyMap()
	err := km.ApplyOverrides(map[string][]string{
		"complete_backward": {"ctrl+p", "shift+tab"},
		"refresh":           {"f5"},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if got := km.Lookup(tea.KeyMsg{Type: tea.KeyCtrlP}); got != ActionCompleteBackward {
		t.Errorf("ctrl+p = %v, want complete_backward", got)
	}
	if got := km.Lookup(tea.KeyMsg{Type: tea.KeyF5}); got != ActionRefresh {
		t.Errorf("f5 = %v, want refresh", got)
	}
	if got := km.Lookup(tea.KeyMsg{Type: tea.KeyCtrlR}); got != ActionNone {
		t.Errorf("ctrl+r = %v, want none", got)
	}
}

func TestApplyOverridesUnknownAction(t *testing.T) {
	km := DefaultKeyMap()
	if err := km.ApplyOverrides(map[string][]string{"explode": {"x"}}); err == nil {
		t.Error("expected an error for an unknown action")
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	bindings := km.HelpBindings()
	if len(bindings) != len(helpDescriptions) {
		t.Fatalf("got %d help bindings, want %d", len(bindings), len(helpDescriptions))
	}

	first := bindings[0].Help()
	if first.Key != "tab" || first.Desc != "complete" {
		t.Errorf("first help binding = %+v, want tab/complete", first)
	}
}
