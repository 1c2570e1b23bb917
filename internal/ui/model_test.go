package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmkang/berthwatch/internal/models"
	"github.com/dmkang/berthwatch/internal/schedule"
)

func testModel(t *testing.T) Model {
	t.Helper()

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	hour := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	board := schedule.NewBoard()
	err := board.LoadPort("KRPUS", []*models.Booking{
		{Vessel: "HYUNDAI HOPE", Voyage: "0045E", Berth: "PNC-1", ETA: hour(8), ETD: hour(14)},
		{Vessel: "MSC ARIA", Voyage: "HK/112W", Berth: "PNC-1", ETA: hour(20), ETD: hour(26)},
		{Vessel: "ONE HARBOUR", Voyage: "003N", Berth: "HJNC-2", ETA: hour(10), ETD: hour(18)},
	})
	if err != nil {
		t.Fatalf("LoadPort() error = %v", err)
	}

	m, err := NewModel(board, "KRPUS")
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := testModel(t)

	if m.activePane != PaneSchedule {
		t.Errorf("NewModel() activePane = %v, want PaneSchedule", m.activePane)
	}
	if len(m.rows) != 3 {
		t.Errorf("NewModel() rows = %d, want 3", len(m.rows))
	}
	// Lanes sort alphabetically, so the HJNC booking comes first.
	if m.rows[0].Vessel != "ONE HARBOUR" {
		t.Errorf("NewModel() first row = %q, want ONE HARBOUR", m.rows[0].Vessel)
	}
}

func TestNewModel_UnknownPort(t *testing.T) {
	board := schedule.NewBoard()
	if _, err := NewModel(board, "NOPE"); err == nil {
		t.Error("NewModel() with unknown port should return an error")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := testModel(t)

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updatedModel.(Model)

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected Ctrl+C to return quit command")
	}
}

func TestModel_Tab_CyclesPanes(t *testing.T) {
	m := testModel(t)

	want := []ActivePane{PaneMaster, PaneSlave, PaneLinks, PaneSchedule}
	for _, pane := range want {
		updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updatedModel.(Model)
		if m.activePane != pane {
			t.Fatalf("After tab, activePane = %v, want %v", m.activePane, pane)
		}
	}
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m := testModel(t)

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updatedModel.(Model)
	if m.selected != 0 {
		t.Errorf("After up at top, selected = %d, want 0", m.selected)
	}

	for i := 0; i < 10; i++ {
		updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updatedModel.(Model)
	}
	if m.selected != len(m.rows)-1 {
		t.Errorf("After down past bottom, selected = %d, want %d", m.selected, len(m.rows)-1)
	}
}

func TestModel_MoveKeyCommitsEdit(t *testing.T) {
	m := testModel(t)
	before := m.rows[0].ETA

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updatedModel.(Model)

	got := m.rows[m.selected].ETA
	if !got.Equal(before.Add(time.Hour)) {
		t.Errorf("After right key, eta = %v, want %v", got, before.Add(time.Hour))
	}
	if m.ws.MasterLog().Len() != 1 {
		t.Errorf("After move, master log rows = %d, want 1", m.ws.MasterLog().Len())
	}
}

func TestModel_CloneKeyAddsBooking(t *testing.T) {
	m := testModel(t)

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updatedModel.(Model)

	if len(m.rows) != 4 {
		t.Fatalf("After clone, rows = %d, want 4", len(m.rows))
	}
	clone := m.rows[m.selected]
	if clone.Role != models.CopySecond {
		t.Errorf("clone role = %q, want %q", clone.Role, models.CopySecond)
	}
}

func TestModel_ResetKeyRestoresBaseline(t *testing.T) {
	m := testModel(t)

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updatedModel.(Model)
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updatedModel.(Model)

	if m.ws.MasterLog().Len() != 0 {
		t.Errorf("After reset, master log rows = %d, want 0", m.ws.MasterLog().Len())
	}
	day := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	if !m.rows[0].ETA.Equal(day) {
		t.Errorf("After reset, first eta = %v, want %v", m.rows[0].ETA, day)
	}
}

func TestModel_MarkAndLinkRecordsRow(t *testing.T) {
	m := testModel(t)

	// Mark the HJNC booking as the discharge side, select a PNC booking
	// as the load, then link.
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m = updatedModel.(Model)
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updatedModel.(Model)
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = updatedModel.(Model)

	links := m.ws.Links()
	if len(links) != 1 {
		t.Fatalf("After link, rows = %d, want 1", len(links))
	}
	if links[0].Discharge.Vessel != "ONE HARBOUR" {
		t.Errorf("link discharge = %q, want ONE HARBOUR", links[0].Discharge.Vessel)
	}
	if m.marked != nil {
		t.Error("After link, marked should be cleared")
	}
}

func TestModel_View_RendersWithoutPanic(t *testing.T) {
	m := testModel(t)

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	m = updatedModel.(Model)

	view := m.View()
	if view == "" {
		t.Error("View() returned empty string")
	}
}
