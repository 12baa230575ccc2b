// Package bubbletea provides the interactive terminal reader built on
// bubbletea and bubbles.
package bubbletea

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/hadisler"
)

// Title is shown above the panes.
const Title = "Hadis Külliyatı"

// Copy button labels.
const (
	CopyLabel   = "📋 Kopyala"
	CopiedLabel = "✅"
)

// DefaultCopyDelay is how long the copied label stays visible.
const DefaultCopyDelay = time.Second

type pane int

const (
	paneChapters pane = iota
	paneTopics
	paneDetail
)

// Config holds the optional collaborators of a Model.
type Config struct {
	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error

	// CopyDelay defaults to DefaultCopyDelay.
	CopyDelay time.Duration
}

type copyRevertMsg struct {
	seq int
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#45ad1d"))
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7f8c8d"))
	focusedStyle = paneStyle.BorderForeground(lipgloss.Color("#45ad1d"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
)

// Model is the tea.Model of the reader. It owns a started Session and
// forwards user actions to it.
type Model struct {
	ctx     context.Context
	session *hadisler.Session
	config  Config
	keys    keyMap

	chapters list.Model
	topics   list.Model
	search   textinput.Model
	detail   viewport.Model
	help     help.Model

	focus     pane
	searching bool

	copyLabel string
	copySeq   int
	copyErr   error

	width, height int
}

// New returns a Model for session. The session should already be started
// so the restored selection shows up in the lists.
func New(ctx context.Context, session *hadisler.Session, config Config) *Model {
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}
	if config.CopyDelay <= 0 {
		config.CopyDelay = DefaultCopyDelay
	}

	search := textinput.New()
	search.Placeholder = "Hadislerde ara..."
	search.Prompt = "🔍 "
	search.CharLimit = 200

	m := &Model{
		ctx:       ctx,
		session:   session,
		config:    config,
		keys:      defaultKeyMap(),
		chapters:  newList("Fasıllar"),
		topics:    newList("Konular"),
		search:    search,
		detail:    viewport.New(0, 0),
		help:      help.New(),
		copyLabel: CopyLabel,
		width:     80,
		height:    24,
	}
	m.syncChapters()
	m.syncTopics()
	m.layout()
	m.syncDetail(true)
	return m
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

type item string

func (i item) Title() string       { return string(i) }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return string(i) }

func items(values []string) []list.Item {
	out := make([]list.Item, len(values))
	for i, v := range values {
		out[i] = item(v)
	}
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.syncDetail(false)
		return m, nil

	case copyRevertMsg:
		if msg.seq == m.copySeq {
			m.copyLabel = CopyLabel
			m.copyErr = nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m.updateFocused(msg)
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.session.Search(m.ctx, m.search.Value())
		m.syncDetail(true)
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		_ = m.session.Save(m.ctx)
		return m, tea.Quit

	case key.Matches(msg, m.keys.next):
		m.focus = (m.focus + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.prev):
		m.focus = (m.focus + 2) % 3
		return m, nil

	case key.Matches(msg, m.keys.search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.cancel):
		m.search.SetValue("")
		m.session.ClearSearch(m.ctx)
		m.syncDetail(true)
		return m, nil

	case key.Matches(msg, m.keys.larger):
		m.session.AdjustFontSize(m.ctx, 1)
		m.syncDetail(false)
		return m, nil

	case key.Matches(msg, m.keys.smaller):
		m.session.AdjustFontSize(m.ctx, -1)
		m.syncDetail(false)
		return m, nil

	case key.Matches(msg, m.keys.theme):
		m.session.ToggleTheme(m.ctx)
		m.syncDetail(false)
		return m, nil

	case key.Matches(msg, m.keys.copy):
		return m, m.copy()

	case key.Matches(msg, m.keys.choose):
		m.selectFocused()
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case paneChapters:
		m.chapters, cmd = m.chapters.Update(msg)
	case paneTopics:
		m.topics, cmd = m.topics.Update(msg)
	case paneDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectFocused() {
	switch m.focus {
	case paneChapters:
		it, ok := m.chapters.SelectedItem().(item)
		if !ok {
			return
		}
		m.search.SetValue("")
		m.session.SelectChapter(m.ctx, string(it))
		m.syncTopics()
		m.syncDetail(true)
		m.focus = paneTopics
	case paneTopics:
		it, ok := m.topics.SelectedItem().(item)
		if !ok {
			return
		}
		m.search.SetValue("")
		m.session.SelectTopic(m.ctx, string(it))
		m.syncDetail(true)
		m.focus = paneDetail
	}
}

func (m *Model) copy() tea.Cmd {
	m.copySeq++
	seq := m.copySeq

	if err := m.config.Clipboard(m.session.PlainText()); err != nil {
		m.copyLabel = CopyLabel
		m.copyErr = err
	} else {
		m.copyLabel = CopiedLabel
		m.copyErr = nil
	}

	return tea.Tick(m.config.CopyDelay, func(time.Time) tea.Msg {
		return copyRevertMsg{seq: seq}
	})
}

func (m *Model) syncChapters() {
	chapters := m.session.Chapters()
	m.chapters.SetItems(items(chapters))
	if i := slices.Index(chapters, m.session.Chapter()); i >= 0 {
		m.chapters.Select(i)
	}
}

func (m *Model) syncTopics() {
	topics := m.session.Topics()
	m.topics.SetItems(items(topics))
	m.topics.Select(max(slices.Index(topics, m.session.Topic()), 0))
}

func (m *Model) syncDetail(top bool) {
	m.detail.SetContent(m.session.Detail())
	if top {
		m.detail.GotoTop()
	}
}

// layout sizes the panes from the window size. Each pane has a one cell
// border; the search line, status line and title take three rows.
func (m *Model) layout() {
	inner := max(m.height-5, 1)

	chapterWidth := max(m.width/5, 12)
	topicWidth := max(m.width/4, 16)
	detailWidth := max(m.width-chapterWidth-topicWidth-6, 10)

	m.chapters.SetSize(chapterWidth, inner)
	m.topics.SetSize(topicWidth, inner)
	m.detail.Width = detailWidth
	m.detail.Height = inner
	m.search.Width = max(m.width-len(m.search.Prompt)-2, 10)
	m.help.Width = m.width

	m.session.SetWidth(detailWidth)
}

// View implements tea.Model.
func (m *Model) View() string {
	style := func(p pane) lipgloss.Style {
		if p == m.focus && !m.searching {
			return focusedStyle
		}
		return paneStyle
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		style(paneChapters).Render(m.chapters.View()),
		style(paneTopics).Render(m.topics.View()),
		style(paneDetail).Render(m.detail.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(Title),
		panes,
		m.search.View(),
		m.statusLine(),
	)
}

func (m *Model) statusLine() string {
	p := m.session.Preferences()

	theme := "🌙 Gece"
	if p.DarkMode {
		theme = "☀️ Gündüz"
	}

	line := fmt.Sprintf("%s  %s  A %d  %s", m.copyLabel, theme, p.FontSize, m.help.View(m.keys))
	if m.copyErr != nil {
		return errorStyle.Render(fmt.Sprintf("%s: %v", CopyLabel, m.copyErr))
	}
	return statusStyle.Render(line)
}

// Run starts the program and blocks until the reader quits.
func Run(ctx context.Context, session *hadisler.Session, config Config) error {
	p := tea.NewProgram(New(ctx, session, config), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
