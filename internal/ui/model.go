package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchiapol/egt/internal/files"
	"github.com/nchiapol/egt/internal/journal"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("6"))
	headStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	contextStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model owns Bubble Tea state for the journal browser.
type Model struct {
	ctx     context.Context
	manager *files.Manager

	doc   *journal.Document
	diags []journal.Diagnostic

	tab      tab
	viewport viewport.Model
	ready    bool

	loading    bool
	statusLine string
	errorLine  string
}

type tab uint8

const (
	tabLog tab = iota
	tabActions
)

type documentLoadedMsg struct {
	doc   *journal.Document
	diags []journal.Diagnostic
	err   error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, manager *files.Manager) Model {
	return Model{
		ctx:        ctx,
		manager:    manager,
		tab:        tabLog,
		loading:    true,
		statusLine: "Loading journal...",
	}
}

// Init loads the journal.
func (m Model) Init() tea.Cmd {
	return m.loadDocumentCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case documentLoadedMsg:
		return m.handleDocumentLoaded(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "1", "2":
		switch msg.String() {
		case "1":
			m.tab = tabLog
		case "2":
			m.tab = tabActions
		default:
			if m.tab == tabLog {
				m.tab = tabActions
			} else {
				m.tab = tabLog
			}
		}
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil
	case "r":
		m.loading = true
		m.statusLine = "Refreshing..."
		m.errorLine = ""
		return m, m.loadDocumentCmd()
	case "g":
		m.viewport.GotoTop()
		return m, nil
	case "G":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Leave room for the title, tab bar, status line and help line.
	height := msg.Height - 5
	if height < 1 {
		height = 1
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, height)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}
	m.refreshContent()
	return m, nil
}

func (m Model) handleDocumentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load journal: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.doc = msg.doc
	m.diags = msg.diags
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("%d log entries, %d action lists", countEntries(msg.doc), countLists(msg.doc))
	if len(msg.diags) > 0 {
		m.statusLine += fmt.Sprintf(", %d parse warnings", len(msg.diags))
	}
	m.refreshContent()
	return m, nil
}

func (m *Model) refreshContent() {
	if !m.ready || m.doc == nil {
		return
	}
	switch m.tab {
	case tabLog:
		m.viewport.SetContent(renderLogView(m.doc))
	case tabActions:
		m.viewport.SetContent(renderActionsView(m.doc))
	}
}

func (m Model) loadDocumentCmd() tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		lines, err := manager.Load()
		if err != nil {
			return documentLoadedMsg{err: err}
		}
		doc, diags := journal.Parse(lines, journal.Options{})
		return documentLoadedMsg{doc: doc, diags: diags}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	title := m.manager.Path()
	if m.doc != nil {
		if name, ok := m.doc.Meta["name"]; ok {
			title = name
		}
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')

	logTab, actionsTab := tabStyle, tabStyle
	if m.tab == tabLog {
		logTab = activeTabStyle
	} else {
		actionsTab = activeTabStyle
	}
	b.WriteString(logTab.Render("1 Log"))
	b.WriteString(actionsTab.Render("2 Actions"))
	b.WriteByte('\n')

	if m.loading || !m.ready {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("tab/1/2 switch  j/k scroll  g/G top/bottom  r reload  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func renderLogView(doc *journal.Document) string {
	if len(doc.Log) == 0 {
		return "(no log entries)"
	}
	var b strings.Builder
	for i, blk := range doc.Log {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(headStyle.Render(blk.HeadLine()))
		b.WriteByte('\n')
		for _, line := range blk.Body {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderActionsView(doc *journal.Document) string {
	var b strings.Builder
	count := 0
	for _, na := range doc.NextActionBlocks() {
		if na.Duplicate() {
			continue
		}
		if count > 0 {
			b.WriteByte('\n')
		}
		lines := na.Lines
		if len(na.Contexts) > 0 || na.Event != nil {
			b.WriteString(contextStyle.Render(strings.TrimRight(lines[0], " \t")))
			b.WriteByte('\n')
			lines = lines[1:]
		}
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		count++
	}
	for _, d := range doc.Body {
		if sm, ok := d.(*journal.SomedayMaybe); ok {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(warningStyle.Render("someday/maybe"))
			b.WriteByte('\n')
			for _, line := range sm.Lines {
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}
	if b.Len() == 0 {
		return "(no next actions)"
	}
	return b.String()
}

func countEntries(doc *journal.Document) int {
	count := 0
	for _, blk := range doc.Log {
		if !blk.Anchor {
			count++
		}
	}
	return count
}

func countLists(doc *journal.Document) int {
	count := 0
	for _, na := range doc.NextActionBlocks() {
		if !na.Duplicate() {
			count++
		}
	}
	return count
}
