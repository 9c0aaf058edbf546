// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     treeview
// Description: Bubbletea model showing the token stream and the parse tree
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/topdown/internal/token"
	"github.com/msto63/topdown/internal/tree"
)

// Tab identifies the visible page
type Tab int

const (
	TabTokens Tab = iota
	TabTree
)

// String returns the tab title
func (t Tab) String() string {
	switch t {
	case TabTokens:
		return "Tokens"
	case TabTree:
		return "Tree"
	default:
		return "?"
	}
}

// Config holds the result of one scan and parse
type Config struct {
	Path   string
	Tokens []token.Token
	Root   *tree.Node // nil if parsing failed
	Err    error      // scan or parse failure
	Indent int
}

// Model is the main Bubbletea model for the viewer
type Model struct {
	width  int
	height int
	ready  bool
	tab    Tab

	viewport viewport.Model
	cfg      Config
}

// New creates a viewer model
func New(cfg Config) Model {
	if cfg.Indent <= 0 {
		cfg.Indent = 2
	}
	return Model{cfg: cfg}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKeyPress(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + tab bar
		footerHeight := 3 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles the viewer's own keys; scrolling keys fall through
// to the viewport
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit, true

	case tea.KeyTab, tea.KeyShiftTab:
		if m.tab == TabTokens {
			m.tab = TabTree
		} else {
			m.tab = TabTokens
		}
		m.updateViewportContent()
		m.viewport.GotoTop()
		return m, nil, true

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit, true
		case "g":
			m.viewport.GotoTop()
			return m, nil, true
		case "G":
			m.viewport.GotoBottom()
			return m, nil, true
		}
	}

	return m, nil, false
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading viewer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	b.WriteString(ContentPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the logo and the source path
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render(m.cfg.Path),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		RenderTab(TabTokens.String(), m.tab == TabTokens),
		" ",
		RenderTab(TabTree.String(), m.tab == TabTree),
	)
}

// renderStatusBar shows token and leaf counts and the parse outcome
func (m Model) renderStatusBar() string {
	counts := fmt.Sprintf("Tokens: %d", len(m.cfg.Tokens))
	if m.cfg.Root != nil {
		counts += fmt.Sprintf("  Leaves: %d", len(tree.Leaves(m.cfg.Root)))
	}
	left := HelpDescStyle.Render(counts)

	var right string
	if m.cfg.Err != nil {
		right = StatusFailedStyle.Render("Parse failed")
	} else {
		right = StatusOKStyle.Render("Parse successful")
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}

	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("tab", "Switch"),
		RenderKeyHint("↑/↓", "Scroll"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent fills the viewport with the active tab
func (m *Model) updateViewportContent() {
	if m.tab == TabTokens {
		m.viewport.SetContent(renderTokens(m.cfg.Tokens))
		return
	}
	m.viewport.SetContent(m.renderTree())
}

// renderTree renders the parse tree, or the error panel when parsing failed
func (m Model) renderTree() string {
	if m.cfg.Err != nil || m.cfg.Root == nil {
		msg := "no parse tree"
		if m.cfg.Err != nil {
			msg = m.cfg.Err.Error()
		}
		return ErrorPanelStyle.Render("Parse error: " + msg)
	}

	var b strings.Builder
	tree.Walk(m.cfg.Root, func(n *tree.Node, depth int) bool {
		b.WriteString(LineStyle.Render(branch(n, depth, m.cfg.Indent)))
		b.WriteString(styleFor(n).Render(n.Label()))
		b.WriteString("\n")
		return true
	})
	return b.String()
}

// renderTokens lists tokens as "<lexeme> : <kind>" with their line
func renderTokens(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		line := LineStyle.Render(fmt.Sprintf("%4d ", tok.Line))
		b.WriteString(line)
		b.WriteString(LexemeStyle.Render(tok.Lexeme))
		b.WriteString(" : ")
		b.WriteString(KindStyle.Render(tok.Kind.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// branch returns the guide drawn in front of n: "├─" for a child with
// siblings after it, "└─" for the last child
func branch(n *tree.Node, depth, indent int) string {
	if depth == 0 {
		return ""
	}
	connector := "├"
	if isLastChild(n) {
		connector = "└"
	}
	return strings.Repeat(" ", (depth-1)*indent) + connector + strings.Repeat("─", indent-1)
}

func isLastChild(n *tree.Node) bool {
	parent := n.Parent()
	return parent == nil || parent.Child(parent.Len()-1) == n
}

func styleFor(n *tree.Node) lipgloss.Style {
	switch {
	case n.Kind == tree.Empty:
		return EmptyStyle
	case n.IsLeaf():
		return TerminalStyle
	default:
		return ProductionStyle
	}
}

// Run starts the viewer
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
