package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"obotab/internal/adapters/tui/views"
	"obotab/internal/application/commands"
	"obotab/internal/domain"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	onto *domain.Ontology

	state   ViewState
	browser *views.BrowserModel
	search  *views.SearchModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application browsing the given ontology from
// the given root term.
func NewApp(onto *domain.Ontology, rootID string) *App {
	return &App{
		onto:    onto,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(onto, rootID),
		search:  views.NewSearchModel(searchFunc(onto)),
		help:    views.NewHelpModel(),
	}
}

// searchFunc ranks all terms of the ontology against a query.
func searchFunc(onto *domain.Ontology) views.SearchFunc {
	return func(query string) []domain.SearchResult {
		var candidates []domain.SearchResult
		for term := range onto.Terms() {
			flat := domain.FlattenTerm(term)
			candidates = append(candidates, domain.SearchResult{
				ID:          flat.ID,
				Name:        flat.Name,
				MatchedText: flat.Definition,
			})
		}

		scored := commands.FuzzySort(candidates, query)
		results := make([]domain.SearchResult, len(scored))
		for i, s := range scored {
			results[i] = s.SearchResult
		}
		return results
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewBrowser
		a.browser.FocusTerm(msg.Result.ID)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
