package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"obotab/internal/domain"
)

func browserFixture(t *testing.T) *BrowserModel {
	t.Helper()
	input := `[Term]
id: A
name: root

[Term]
id: B
name: branch
is_a: A

[Term]
id: C
name: leaf
is_a: B
`
	onto, _, err := domain.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	m := NewBrowserModel(onto, "A")
	msg := m.loadTree()
	m.Update(msg)
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowser_InitialTreeShowsRootAndChildren(t *testing.T) {
	m := browserFixture(t)

	view := m.View()
	if !strings.Contains(view, "A root") {
		t.Errorf("root missing from view: %q", view)
	}
	if !strings.Contains(view, "B branch") {
		t.Errorf("direct child missing from view: %q", view)
	}
	// grandchild hidden until B is expanded
	if strings.Contains(view, "C leaf") {
		t.Errorf("collapsed grandchild visible: %q", view)
	}
}

func TestBrowser_ExpandRevealsGrandchild(t *testing.T) {
	m := browserFixture(t)

	m.Update(keyPress('j')) // move to B
	m.Update(keyPress('l')) // expand B

	if !strings.Contains(m.View(), "C leaf") {
		t.Error("expanded grandchild not visible")
	}

	m.Update(keyPress('h')) // collapse B
	if strings.Contains(m.View(), "C leaf") {
		t.Error("grandchild still visible after collapse")
	}
}

func TestBrowser_CursorStaysInBounds(t *testing.T) {
	m := browserFixture(t)

	for i := 0; i < 10; i++ {
		m.Update(keyPress('j'))
	}
	if m.cursor >= len(m.flatNodes) {
		t.Errorf("cursor %d out of bounds (%d nodes)", m.cursor, len(m.flatNodes))
	}

	for i := 0; i < 10; i++ {
		m.Update(keyPress('k'))
	}
	if m.cursor != 0 {
		t.Errorf("cursor should clamp at 0, got %d", m.cursor)
	}
}

func TestBrowser_FocusTermExpandsAncestors(t *testing.T) {
	m := browserFixture(t)

	m.FocusTerm("C")

	if node := m.selectedNode(); node == nil || node.ID != "C" {
		t.Fatalf("expected cursor on C, got %+v", node)
	}
	if !strings.Contains(m.View(), "C leaf") {
		t.Error("focused term not visible")
	}
}
