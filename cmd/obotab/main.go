package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"obotab/internal/adapters/fetch"
	"obotab/internal/adapters/tui"
	"obotab/internal/application/commands"
	"obotab/internal/config"
	"obotab/internal/domain"
	"obotab/internal/logger"
)

func main() {
	sourceFlag := flag.String("source", config.Source(), "ontology source (file path or http(s) URL)")
	rootFlag := flag.String("root-id", "", "start browsing at this term")
	flag.Parse()

	if err := logger.Init(false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	resolver := fetch.NewResolver()
	onto, err := commands.Load(resolver, logger.Get(), *sourceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootID := *rootFlag
	if rootID == "" {
		rootID, err = domain.ResolveRoot(onto)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	app := tui.NewApp(onto, rootID)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
