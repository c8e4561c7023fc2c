package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"obotab/internal/adapters/tui/styles"
	"obotab/internal/domain"
)

// SearchFunc queries the loaded ontology and returns ranked matches.
type SearchFunc func(query string) []domain.SearchResult

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to term"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// SearchModel is the model for the term search view
type SearchModel struct {
	search  SearchFunc
	input   textinput.Model
	results []domain.SearchResult
	cursor  int
	width   int
	height  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(search SearchFunc) *SearchModel {
	input := textinput.New()
	input.Placeholder = "term id, name or definition..."
	input.Focus()

	return &SearchModel{
		search: search,
		input:  input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	return textinput.Blink
}

// SearchSelectMsg is sent when a search result is selected
type SearchSelectMsg struct {
	Result domain.SearchResult
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.results) {
				result := m.results[m.cursor]
				// Copy ID to clipboard
				clipboard.WriteAll(result.ID)
				return m, func() tea.Msg {
					return SearchSelectMsg{Result: result}
				}
			}
			return m, nil
		}
	}

	// Update input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Re-run the search on input change
	query := m.input.Value()
	if len(query) >= 2 {
		m.results = m.search(query)
		if m.cursor >= len(m.results) {
			m.cursor = 0
		}
	} else {
		m.results = nil
	}

	return m, cmd
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	// Title
	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	// Search input
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	// Results
	if len(m.results) == 0 {
		if len(m.input.Value()) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		// Show max 10 results
		maxResults := 10
		if len(m.results) < maxResults {
			maxResults = len(m.results)
		}

		for i := 0; i < maxResults; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.results) > 10 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-10)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("enter: go to term (copies id) • esc: back"))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(result domain.SearchResult, selected bool) string {
	text := fmt.Sprintf("%s  %s", result.ID, result.Name)
	if selected {
		return styles.NodeSelected.Render(text)
	}
	return styles.NodeLeaf.Render(text)
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
