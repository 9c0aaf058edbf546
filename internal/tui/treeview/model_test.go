package treeview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/topdown/internal/token"
	"github.com/msto63/topdown/internal/tree"
)

func sampleConfig() Config {
	root := tree.NewNode(tree.Program)
	root.Append(tree.NewNode(tree.StatementList)).Append(tree.NewEmpty())
	root.Append(tree.NewLeaf(tree.Punctuation, ""))

	return Config{
		Path:   "empty.td",
		Tokens: []token.Token{token.New(token.READ, "read", 1), token.New(token.ID, "x", 1)},
		Root:   root,
	}
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_NotReady(t *testing.T) {
	if got := New(sampleConfig()).View(); got != "Loading viewer..." {
		t.Errorf("View() = %q", got)
	}
}

func TestModel_TokensTab(t *testing.T) {
	m := sized(New(sampleConfig()))

	view := m.View()
	for _, want := range []string{"read : READ", "x : ID", "Tokens: 2", "Parse successful", "empty.td"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_SwitchTab(t *testing.T) {
	m := sized(New(sampleConfig()))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != TabTree {
		t.Fatalf("tab = %v, want Tree", m.tab)
	}
	view := m.View()
	for _, want := range []string{"program", "├─stmtList", "  └─e", "└─$$", "Leaves: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("Tree view missing %q", want)
		}
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != TabTokens {
		t.Errorf("tab = %v, want Tokens", m.tab)
	}
}

func TestModel_ParseError(t *testing.T) {
	cfg := sampleConfig()
	cfg.Root = nil
	cfg.Err = errors.New("expr: expected ID, found EOF at line 1")

	m := sized(New(cfg))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})

	view := m.View()
	if !strings.Contains(view, "Parse error: expr: expected ID") {
		t.Errorf("error panel missing in\n%s", view)
	}
	if !strings.Contains(view, "Parse failed") {
		t.Error("status bar does not report failure")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "read : READ") {
		t.Error("token tab should still list scanned tokens")
	}
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := press(sized(New(sampleConfig())), tt.key)
			if cmd == nil {
				t.Fatal("no command returned")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command did not quit")
			}
		})
	}
}

func TestModel_Navigation(t *testing.T) {
	cfg := sampleConfig()
	for i := 0; i < 100; i++ {
		cfg.Tokens = append(cfg.Tokens, token.New(token.ID, "v", i+2))
	}
	m := sized(New(cfg))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if !m.viewport.AtBottom() {
		t.Error("G did not scroll to the bottom")
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !m.viewport.AtTop() {
		t.Error("g did not scroll to the top")
	}
}

func TestTab_String(t *testing.T) {
	if TabTokens.String() != "Tokens" || TabTree.String() != "Tree" {
		t.Error("unexpected tab titles")
	}
}

func TestBranch(t *testing.T) {
	root := tree.NewNode(tree.Expr)
	first := root.Append(tree.NewNode(tree.Term))
	last := root.Append(tree.NewNode(tree.TermTail))

	tests := []struct {
		name   string
		node   *tree.Node
		depth  int
		indent int
		want   string
	}{
		{"root", root, 0, 2, ""},
		{"first child", first, 1, 2, "├─"},
		{"last child", last, 1, 2, "└─"},
		{"nested with wide indent", last, 2, 3, "   └──"},
		{"single-space indent", first, 1, 1, "├"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := branch(tt.node, tt.depth, tt.indent); got != tt.want {
				t.Errorf("branch() = %q, want %q", got, tt.want)
			}
		})
	}
}
