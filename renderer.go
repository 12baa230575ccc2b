package hadisler

// Labels used by every rendering of an entry.
const (
	LabelEntry      = "Hadis No"
	LabelNarrator   = "Ravi"
	LabelBody       = "Hadis"
	LabelCommentary = "ŞERH"
)

// RenderOptions controls how a result set is presented.
type RenderOptions struct {
	// Term is the active search term. Empty disables highlighting.
	Term string

	DarkMode bool
	FontSize int

	// Width is the available width in columns, if the renderer needs one.
	Width int
}

// Renderer renders entries for the detail pane.
type Renderer interface {
	// Render returns the markup for entries. An empty result set renders
	// as an empty string.
	Render(entries []*Entry, opts RenderOptions) (string, error)
}
