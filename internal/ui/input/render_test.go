package input

import (
	"strings"
	"testing"

	"github.com/atinylittleshell/launchbox/internal/completion"
	"github.com/atinylittleshell/launchbox/internal/pathscan"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func plainRenderConfig() RenderConfig {
	return RenderConfig{
		PromptStyle:    lipgloss.NewStyle(),
		TextStyle:      lipgloss.NewStyle(),
		CursorStyle:    lipgloss.NewStyle(),
		CompletedStyle: lipgloss.NewStyle(),
		BoxStyle:       lipgloss.NewStyle(),
		SelectedStyle:  lipgloss.NewStyle(),
		DimStyle:       lipgloss.NewStyle(),
		ErrorStyle:     lipgloss.NewStyle(),
	}
}

func TestCalculateVisibleWindow(t *testing.T) {
	tests := []struct {
		name                 string
		selected, total, max int
		wantStart, wantEnd   int
	}{
		{"fits", 1, 3, 5, 0, 3},
		{"first", 0, 10, 4, 0, 4},
		{"middle", 5, 10, 4, 4, 8},
		{"last", 9, 10, 4, 6, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := calculateVisibleWindow(tt.selected, tt.total, tt.max)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("calculateVisibleWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.selected, tt.total, tt.max, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRenderInputLine(t *testing.T) {
	r := NewRenderer(plainRenderConfig())
	b := NewBuffer()
	b.SetText("ls")

	got := ansi.Strip(r.RenderInputLine("run: ", b, -1))
	if got != "run: ls " {
		t.Errorf("RenderInputLine() = %q, want %q", got, "run: ls ")
	}
}

func TestRenderCompletionList(t *testing.T) {
	r := NewRenderer(plainRenderConfig())
	state := completion.Begin("ls", pathscan.NewIndex([]string{"ls", "lsof", "lscpu"}))

	if got := r.RenderCompletionList(state, 5, 40); got != "" {
		t.Errorf("list before the first step should be empty, got %q", got)
	}

	state.Advance(completion.Forward)
	state.Advance(completion.Forward)

	lines := strings.Split(ansi.Strip(r.RenderCompletionList(state, 5, 40)), "\n")
	want := []string{"  ls", "> lscpu", "  lsof"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderCompletionListTruncates(t *testing.T) {
	r := NewRenderer(plainRenderConfig())
	state := completion.Begin("x", pathscan.NewIndex([]string{"x-very-long-command-name", "xz"}))
	state.Advance(completion.Forward)

	for _, line := range strings.Split(ansi.Strip(r.RenderCompletionList(state, 5, 10)), "\n") {
		if w := ansi.StringWidth(line); w > 10 {
			t.Errorf("line %q is %d cells wide, want at most 10", line, w)
		}
	}
}

func TestRenderPopupCentered(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())
	r.SetSize(100, 20)
	b := NewBuffer()

	view := r.RenderPopup(PopupView{Prompt: "run: ", Buffer: b, CompletedFrom: -1, Status: "0 commands"})
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Errorf("popup should fill the terminal height, got %d lines", len(lines))
	}
	if !strings.Contains(ansi.Strip(view), "0 commands") {
		t.Error("popup should contain the status line")
	}
}

func TestFormatPosition(t *testing.T) {
	state := completion.Begin("l", pathscan.NewIndex([]string{"ls", "lsof"}))
	if got := FormatPosition(state); got != "" {
		t.Errorf("FormatPosition() = %q, want empty", got)
	}
	state.Advance(completion.Backward)
	if got := FormatPosition(state); got != "2/2" {
		t.Errorf("FormatPosition() = %q, want %q", got, "2/2")
	}
	if got := FormatPosition(nil); got != "" {
		t.Errorf("FormatPosition(nil) = %q, want empty", got)
	}
}
