package hadisler

import (
	"strconv"
	"strings"
)

// FormatEntries formats entries as plain text, e.g. for the clipboard.
// Entries are separated by blank lines.
func FormatEntries(entries []*Entry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		b.WriteString("— " + LabelEntry + ": " + strconv.FormatInt(e.ID, 10) + " —\n")
		if e.Original != "" {
			b.WriteString(e.Original + "\n")
		}
		b.WriteString(LabelNarrator + ": " + e.Narrator + "\n")
		b.WriteString(LabelBody + ": " + e.Body + "\n")
		b.WriteString(LabelCommentary + "\n")
		b.WriteString(e.CommentaryText())
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
