package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmkang/berthwatch/internal/database"
	"github.com/dmkang/berthwatch/internal/schedule"
	"github.com/dmkang/berthwatch/internal/tabular"
	"github.com/dmkang/berthwatch/internal/ui"
)

func main() {
	dbPath := flag.String("db", database.DBPath(), "Path to the sqlite database file")
	port := flag.String("port", "", "Port code to load (e.g., KRPUS)")
	importFile := flag.String("import", "", "Tab-separated roster file to import for --port before loading")
	flag.Parse()

	if *port == "" {
		fmt.Println("Error: --port is required (e.g., --port KRPUS).")
		os.Exit(1)
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if *importFile != "" {
		data, err := os.ReadFile(*importFile)
		if err != nil {
			fmt.Printf("Error reading roster file: %v\n", err)
			os.Exit(1)
		}
		bookings, err := tabular.ParseRoster(string(data))
		if err != nil {
			fmt.Printf("Error parsing roster: %v\n", err)
			os.Exit(1)
		}
		if err := database.SaveRoster(db, *port, bookings); err != nil {
			fmt.Printf("Error saving roster: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d bookings for %s\n", len(bookings), *port)
	}

	bookings, err := database.LoadRoster(db, *port)
	if err != nil {
		fmt.Printf("Error loading roster: %v\n", err)
		os.Exit(1)
	}
	if len(bookings) == 0 {
		fmt.Printf("No bookings stored for port %s. Import a roster with --import.\n", *port)
		os.Exit(1)
	}

	board := schedule.NewBoard()
	if err := board.LoadPort(*port, bookings); err != nil {
		fmt.Printf("Error loading port schedule: %v\n", err)
		os.Exit(1)
	}

	m, err := ui.NewModel(board, *port)
	if err != nil {
		fmt.Printf("Error initializing UI: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
