package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmkang/berthwatch/internal/models"
	"github.com/dmkang/berthwatch/internal/schedule"
	"github.com/dmkang/berthwatch/internal/ui"
)

// This demo shows the UI with mock data
func main() {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	hour := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	// Set up a mock Busan roster
	board := schedule.NewBoard()
	err := board.LoadPort("KRPUS", []*models.Booking{
		{Vessel: "HYUNDAI HOPE", Voyage: "0045E", Berth: "PNC-1", Line: "HMM", Route: "FE-USWC", ETA: hour(8), ETD: hour(14)},
		{Vessel: "MSC ARIA", Voyage: "HK/112W", Berth: "PNC-1", Line: "MSC", Route: "AE-1", ETA: hour(15), ETD: hour(22)},
		{Vessel: "EVER LUCID", Voyage: "0301-044E", Berth: "PNC-3", Line: "EMC", Route: "CPS", ETA: hour(6), ETD: hour(16)},
		{Vessel: "ONE HARBOUR", Voyage: "003N", Berth: "HJNC-2", Line: "ONE", Route: "JTK", ETA: hour(10), ETD: hour(18)},
		{Vessel: "WAN HAI 521", Voyage: "W102", Berth: "HJNC-2", Line: "WHL", Route: "CI-2", ETA: hour(21), ETD: hour(27)},
	})
	if err != nil {
		fmt.Printf("Error loading demo roster: %v\n", err)
		os.Exit(1)
	}

	// Pre-record one edit and one transshipment link so the log and
	// link panes render populated.
	ws, _ := board.Workspace("KRPUS")
	hope := models.Identity{Vessel: "HYUNDAI HOPE", Voyage: "0045E"}
	if _, err := ws.ProposePlacement(hope, 2, hour(11), 6*time.Hour); err == nil {
		ws.CommitPlacement(hope)
	}
	lucid := models.Identity{Vessel: "EVER LUCID", Voyage: "0301-044E"}
	if color, err := ws.ClassifyLink(lucid, hope); err == nil {
		ws.RecordLink(hope, lucid, color)
	}

	m, err := ui.NewModel(board, "KRPUS")
	if err != nil {
		fmt.Printf("Error initializing demo UI: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
