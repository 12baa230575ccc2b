// Package lipgloss renders entries for terminal display using lipgloss.
package lipgloss

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/hadisler"
)

// Ensure Renderer implements hadisler.Renderer at compile time.
var _ hadisler.Renderer = (*Renderer)(nil)

// Theme holds the colors of one terminal theme.
type Theme struct {
	Accent    lipgloss.Color
	Arabic    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color
}

// Light and Dark are the built-in themes.
var (
	Light = Theme{
		Accent:    lipgloss.Color("#45ad1d"),
		Arabic:    lipgloss.Color("#e74c3c"),
		Text:      lipgloss.Color("#333333"),
		Muted:     lipgloss.Color("#7f8c8d"),
		Border:    lipgloss.Color("#b0bbba"),
		Highlight: lipgloss.Color("#ff0000"),
	}
	Dark = Theme{
		Accent:    lipgloss.Color("#45ad1d"),
		Arabic:    lipgloss.Color("#e74c3c"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#7f8c8d"),
		Border:    lipgloss.Color("#444444"),
		Highlight: lipgloss.Color("#ff0000"),
	}
)

// ThemeFor returns the theme for the given mode.
func ThemeFor(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// DefaultWidth is used when the caller does not pass a width.
const DefaultWidth = 80

// minColumns is the narrowest text column.
const minColumns = 20

// Renderer renders entries as styled terminal text. A terminal has no
// font size, so the font size narrows or widens the text column instead:
// the default size uses the full width and every step up makes the
// column proportionally narrower.
type Renderer struct {
	r *lipgloss.Renderer
}

// NewRenderer creates a Renderer drawing with r, or with lipgloss's default
// renderer when r is nil.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{r: r}
}

// Columns returns the text column width for the given pane width and font size.
func Columns(width, fontSize int) int {
	if width <= 0 {
		width = DefaultWidth
	}
	if fontSize <= 0 {
		fontSize = hadisler.DefaultFontSize
	}
	cols := width * hadisler.DefaultFontSize / hadisler.ClampFontSize(fontSize)
	return max(min(cols, width), min(minColumns, width))
}

// Render renders entries. Occurrences of opts.Term in the body and
// commentary are drawn in the highlight color.
func (r *Renderer) Render(entries []*hadisler.Entry, opts hadisler.RenderOptions) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	theme := ThemeFor(opts.DarkMode)
	cols := Columns(opts.Width, opts.FontSize)

	header := r.r.NewStyle().Foreground(theme.Accent).Bold(true).Width(cols).Align(lipgloss.Center)
	original := r.r.NewStyle().Foreground(theme.Arabic).Width(cols).Align(lipgloss.Right)
	narrator := r.r.NewStyle().Foreground(theme.Muted).Width(cols)
	body := r.r.NewStyle().Foreground(theme.Text).Width(cols)
	label := r.r.NewStyle().Foreground(theme.Text).Bold(true)
	highlight := r.r.NewStyle().Foreground(theme.Highlight).Bold(true)
	commentaryHead := r.r.NewStyle().Foreground(theme.Accent).Bold(true)
	commentary := r.r.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.Accent).
		PaddingLeft(1).
		Width(max(cols-1, 1))
	rule := r.r.NewStyle().Foreground(theme.Border)

	segments := func(text string) string {
		var b strings.Builder
		for _, s := range hadisler.Highlight(text, opts.Term) {
			if s.Match {
				b.WriteString(highlight.Render(s.Text))
			} else {
				b.WriteString(s.Text)
			}
		}
		return b.String()
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		parts := []string{
			header.Render("— " + hadisler.LabelEntry + ": " + strconv.FormatInt(e.ID, 10) + " —"),
		}
		if e.Original != "" {
			parts = append(parts, original.Render(e.Original))
		}
		parts = append(parts,
			narrator.Render(label.Render(hadisler.LabelNarrator+":")+" "+e.Narrator),
			body.Render(label.Render(hadisler.LabelBody+":")+" "+segments(e.Body)),
			commentary.Render(commentaryHead.Render(hadisler.LabelCommentary)+"\n"+segments(e.CommentaryText())),
			rule.Render(strings.Repeat("─", cols)),
		)
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	return strings.Join(blocks, "\n\n"), nil
}
