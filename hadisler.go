// Package hadisler provides a local browser for a hadith collection.
// It reads chapters, topics and entries from a SQLite database, renders
// the selected entries with their commentary, and remembers the reader's
// theme, font size and last position between runs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, lipgloss/, bubbletea/).
package hadisler
