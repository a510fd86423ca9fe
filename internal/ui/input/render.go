package input

import (
	"fmt"
	"strings"

	"github.com/atinylittleshell/launchbox/internal/completion"
	"github.com/atinylittleshell/launchbox/internal/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// minBoxWidth is the narrowest the popup box is drawn, in cells.
const minBoxWidth = 40

// RenderConfig holds styling configuration for the popup.
type RenderConfig struct {
	// PromptStyle is the style applied to the prompt string.
	PromptStyle lipgloss.Style

	// TextStyle is the style applied to the input text.
	TextStyle lipgloss.Style

	// CursorStyle is the style applied to the cursor character.
	CursorStyle lipgloss.Style

	// CompletedStyle marks the part of the word filled in by completion.
	CompletedStyle lipgloss.Style

	// BoxStyle is the border/container of the popup.
	BoxStyle lipgloss.Style

	// SelectedStyle is the style for the selected completion candidate.
	SelectedStyle lipgloss.Style

	// DimStyle is used for the status line.
	DimStyle lipgloss.Style

	// ErrorStyle is used for validation errors.
	ErrorStyle lipgloss.Style
}

// DefaultRenderConfig returns a RenderConfig with the default styles.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PromptStyle:    lipgloss.NewStyle().Foreground(styles.ColorCyan).Bold(true),
		TextStyle:      lipgloss.NewStyle(),
		CursorStyle:    lipgloss.NewStyle().Reverse(true),
		CompletedStyle: lipgloss.NewStyle().Foreground(styles.ColorYellow),
		BoxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorCyan).
			Padding(0, 1),
		SelectedStyle: lipgloss.NewStyle().Bold(true),
		DimStyle:      lipgloss.NewStyle().Foreground(styles.ColorGray),
		ErrorStyle:    lipgloss.NewStyle().Foreground(styles.ColorRed),
	}
}

// PopupView is everything the renderer needs to draw one frame.
type PopupView struct {
	Prompt string
	Buffer *Buffer

	// CompletedFrom is the rune index where completed text starts, or -1.
	CompletedFrom int

	// Completion is the active completion state, or nil.
	Completion *completion.State
	MaxVisible int

	Status string
	Error  string
	Help   []key.Binding
}

// Renderer draws the popup box centered in the terminal.
type Renderer struct {
	config RenderConfig
	width  int
	height int
	help   help.Model
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RenderConfig) *Renderer {
	return &Renderer{
		config: config,
		help:   help.New(),
	}
}

// SetSize records the terminal size. Zero values leave the popup unplaced.
func (r *Renderer) SetSize(width, height int) {
	if width > 0 {
		r.width = width
	}
	if height > 0 {
		r.height = height
	}
}

// Width returns the terminal width, or 0 if unknown.
func (r *Renderer) Width() int {
	return r.width
}

// RenderInputLine renders the prompt, the text with its cursor, and the
// completed part of the trailing word in CompletedStyle.
func (r *Renderer) RenderInputLine(prompt string, buffer *Buffer, completedFrom int) string {
	var result strings.Builder
	result.WriteString(r.config.PromptStyle.Render(prompt))

	runes := []rune(buffer.Text())
	pos := buffer.Pos()

	for i, ch := range runes {
		s := string(ch)
		switch {
		case i == pos:
			result.WriteString(r.config.CursorStyle.Render(s))
		case completedFrom >= 0 && i >= completedFrom:
			result.WriteString(r.config.CompletedStyle.Render(s))
		default:
			result.WriteString(r.config.TextStyle.Render(s))
		}
	}

	if pos >= len(runes) {
		result.WriteString(r.config.CursorStyle.Render(" "))
	}

	return result.String()
}

// RenderCompletionList renders a scrolling window over the candidates with
// the selected one marked. It renders nothing unless a candidate is selected
// and there is more than one.
func (r *Renderer) RenderCompletionList(cs *completion.State, maxVisible, width int) string {
	if cs == nil || cs.Len() < 2 || cs.Selected() < 0 {
		return ""
	}
	if maxVisible <= 0 {
		maxVisible = 5
	}

	matches := cs.Matches()
	selected := cs.Selected()
	start, end := calculateVisibleWindow(selected, len(matches), maxVisible)

	itemWidth := width - 2
	if itemWidth < 1 {
		itemWidth = 1
	}

	var lines []string
	for i := start; i < end; i++ {
		item := truncate.StringWithTail(matches[i], uint(itemWidth), "…")
		if i == selected {
			lines = append(lines, "> "+r.config.SelectedStyle.Render(item))
		} else {
			lines = append(lines, "  "+item)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderPopup renders the whole popup and centers it in the terminal.
func (r *Renderer) RenderPopup(v PopupView) string {
	inner := ansi.StringWidth(v.Prompt) + ansi.StringWidth(v.Buffer.Text()) + 1
	if inner < minBoxWidth {
		inner = minBoxWidth
	}
	if r.width > 0 && inner > r.width-4 {
		inner = maxInt(1, r.width-4)
	}

	sections := []string{r.RenderInputLine(v.Prompt, v.Buffer, v.CompletedFrom)}

	if list := r.RenderCompletionList(v.Completion, v.MaxVisible, inner); list != "" {
		sections = append(sections, list)
	}

	if v.Error != "" {
		sections = append(sections, r.config.ErrorStyle.Render(truncate.StringWithTail(v.Error, uint(inner), "…")))
	}

	if v.Status != "" {
		sections = append(sections, r.config.DimStyle.Render(v.Status))
	}

	if len(v.Help) > 0 {
		r.help.Width = inner
		sections = append(sections, r.help.ShortHelpView(v.Help))
	}

	box := r.config.BoxStyle.
		Width(inner + 2).
		Render(strings.Join(sections, "\n"))

	if r.width <= 0 || r.height <= 0 {
		return box
	}
	return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, box)
}

// FormatPosition formats the cycle position as "n/m".
func FormatPosition(cs *completion.State) string {
	if cs == nil || cs.Selected() < 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", cs.Selected()+1, cs.Len())
}

// calculateVisibleWindow determines the start and end indices for a scrolling window.
func calculateVisibleWindow(selected, total, maxVisible int) (start, end int) {
	if total <= maxVisible {
		return 0, total
	}

	// Keep the selection one row from the top where possible.
	start = selected - 1
	if start < 0 {
		start = 0
	}
	if start > total-maxVisible {
		start = total - maxVisible
	}

	return start, start + maxVisible
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
