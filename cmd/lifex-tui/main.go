package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifex/internal/tui"
)

func main() {
	// optional profile file; without one the default profile is edited
	profilePath := ""
	if len(os.Args) > 1 {
		profilePath = os.Args[1]
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			fmt.Printf("Error: Profile file not found: %s\n", profilePath)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		tui.NewModel(profilePath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
