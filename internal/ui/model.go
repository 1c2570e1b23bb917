package ui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmkang/berthwatch/internal/models"
	"github.com/dmkang/berthwatch/internal/schedule"
)

// ActivePane represents which pane is currently focused
type ActivePane int

const (
	PaneSchedule ActivePane = iota
	PaneMaster
	PaneSlave
	PaneLinks
)

// moveStep is how far one key press shifts a booking in time.
const moveStep = time.Hour

// Model represents the application's state
type Model struct {
	board *schedule.Board
	port  string
	ws    *schedule.Workspace

	width      int
	height     int
	activePane ActivePane
	err        error

	// rows is the schedule pane's display order: lanes in order, each
	// lane's bookings by eta. selected indexes into it.
	rows     []*models.Booking
	selected int

	// marked holds the discharge side of a pending transshipment link.
	marked *models.Booking

	masterTable table.Model
	slaveTable  table.Model
	status      string
}

// NewModel creates the application model for one loaded port.
func NewModel(board *schedule.Board, port string) (Model, error) {
	ws, err := board.Workspace(port)
	if err != nil {
		return Model{}, err
	}

	logColumns := []table.Column{
		{Title: "VESSEL", Width: 24},
		{Title: "FROM", Width: 18},
		{Title: "TO", Width: 18},
		{Title: "SHIFT", Width: 7},
	}
	newLog := func() table.Model {
		tbl := table.New(table.WithColumns(logColumns), table.WithHeight(8))
		st := table.DefaultStyles()
		st.Header = st.Header.Bold(true).Foreground(colorPrimary)
		st.Selected = selectedStyle
		tbl.SetStyles(st)
		return tbl
	}

	m := Model{
		board:       board,
		port:        port,
		ws:          ws,
		masterTable: newLog(),
		slaveTable:  newLog(),
	}
	m.refresh()
	return m, nil
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.activePane = (m.activePane + 1) % 4
			return m, nil

		case "up", "k":
			return m.handleCursor(-1, msg), nil

		case "down", "j":
			return m.handleCursor(1, msg), nil

		case "left", "h":
			m.moveSelected(-moveStep, 0, 0)
			return m, nil

		case "right", "l":
			m.moveSelected(moveStep, 0, 0)
			return m, nil

		case "[":
			m.moveSelected(0, -1, 0)
			return m, nil

		case "]":
			m.moveSelected(0, 1, 0)
			return m, nil

		case "+", "=":
			m.moveSelected(0, 0, time.Hour)
			return m, nil

		case "-":
			m.moveSelected(0, 0, -time.Hour)
			return m, nil

		case "c":
			m.cloneSelected()
			return m, nil

		case "m":
			if b := m.selectedBooking(); b != nil {
				m.marked = b
				m.status = fmt.Sprintf("discharge side: %s", b.ID().Display())
			}
			return m, nil

		case "t":
			m.linkMarked()
			return m, nil

		case "r":
			if err := m.board.ResetPort(m.port); err != nil {
				m.err = err
				return m, nil
			}
			m.marked = nil
			m.status = "schedule reset to baseline"
			m.refresh()
			return m, nil
		}
	}
	return m, nil
}

// handleCursor moves the booking cursor in the schedule pane, or scrolls
// the focused log table.
func (m Model) handleCursor(delta int, msg tea.KeyMsg) Model {
	switch m.activePane {
	case PaneSchedule:
		m.selected += delta
		if m.selected < 0 {
			m.selected = 0
		}
		if m.selected > len(m.rows)-1 {
			m.selected = len(m.rows) - 1
		}
	case PaneMaster:
		m.masterTable, _ = m.masterTable.Update(msg)
	case PaneSlave:
		m.slaveTable, _ = m.slaveTable.Update(msg)
	}
	return m
}

func (m *Model) selectedBooking() *models.Booking {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return nil
	}
	return m.rows[m.selected]
}

// moveSelected shifts the selected booking by dt in time, dl in lanes and
// dd in duration, then commits the edit through the engine.
func (m *Model) moveSelected(dt time.Duration, dl int, dd time.Duration) {
	b := m.selectedBooking()
	if b == nil {
		return
	}

	lanes := m.ws.Lanes()
	lane := 0
	for i, l := range lanes {
		if l == b.Berth {
			lane = i
			break
		}
	}
	lane += dl

	m.ws.ProposeFor(b, lane, b.ETA.Add(dt), b.Duration()+dd)
	res := m.ws.CommitFor(b)

	switch {
	case res.Master != nil:
		m.status = fmt.Sprintf("%s -> %s (%s), %d pushed",
			b.ID().Display(), res.Master.To, res.Master.ShiftText, len(res.Slaves))
	default:
		m.status = fmt.Sprintf("%s back on its original slot", b.ID().Display())
	}
	m.refresh()
	m.focusBooking(b)
}

func (m *Model) cloneSelected() {
	b := m.selectedBooking()
	if b == nil {
		return
	}
	clone, err := m.ws.Clone(b.ID())
	if err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("cloned %s to %s", clone.ID().Display(), models.FormatShort(clone.ETA))
	m.refresh()
	m.focusBooking(clone)
}

func (m *Model) linkMarked() {
	load := m.selectedBooking()
	if m.marked == nil || load == nil || m.marked == load {
		return
	}
	color := schedule.Classify(m.marked, load)
	if err := m.ws.RecordLink(load.ID(), m.marked.ID(), color); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("%s -> %s: %s", m.marked.ID().Display(), load.ID().Display(), color)
	m.marked = nil
}

// focusBooking re-selects a booking after the rows were rebuilt.
func (m *Model) focusBooking(b *models.Booking) {
	for i, row := range m.rows {
		if row == b {
			m.selected = i
			return
		}
	}
}

// refresh rebuilds the schedule rows and both log tables from the
// workspace.
func (m *Model) refresh() {
	m.rows = m.rows[:0]
	for _, lane := range m.ws.Lanes() {
		var laneRows []*models.Booking
		for _, b := range m.ws.Bookings() {
			if b.Berth == lane {
				laneRows = append(laneRows, b)
			}
		}
		sort.SliceStable(laneRows, func(i, j int) bool {
			return laneRows[i].ETA.Before(laneRows[j].ETA)
		})
		m.rows = append(m.rows, laneRows...)
	}
	if m.selected > len(m.rows)-1 {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	m.masterTable.SetRows(logRows(m.ws.MasterLog(), true))
	m.slaveTable.SetRows(logRows(m.ws.SlaveLog(), false))
}

func logRows(l *schedule.ChangeLog, master bool) []table.Row {
	var rows []table.Row
	for _, e := range l.Entries() {
		vessel := e.Vessel
		switch e.Role {
		case models.CopyFirst:
			vessel = firstBadgeStyle.Render(vessel + " 1ST")
		case models.CopySecond:
			vessel = secondBadgeStyle.Render(vessel + " 2ND")
		}

		to := e.To
		if master {
			switch e.Highlight {
			case schedule.HighlightBerth:
				to = berthChangeStyle.Render(to)
			case schedule.HighlightTerminal:
				to = terminalChangeStyle.Render(to)
			}
		}

		shift := e.ShiftText
		if e.Shift != 0 {
			shift = shiftStyle.Render(shift)
		}
		rows = append(rows, table.Row{vessel, e.From, to, shift})
	}
	return rows
}

// View renders the application
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	header := titleStyle.Render("BERTHWATCH") + mutedStyle.Render(
		fmt.Sprintf("  port %s · %d bookings · %d lanes", m.port, len(m.rows), len(m.ws.Lanes())))

	scheduleWidth := m.width/2 - 4
	if scheduleWidth < 40 {
		scheduleWidth = 40
	}

	left := m.renderSchedulePane(scheduleWidth)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderLogPane("MASTER — direct edits", m.masterTable, PaneMaster),
		m.renderLogPane("SLAVE — cascaded shifts", m.slaveTable, PaneSlave),
		m.renderLinkPane(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := m.status
	if m.marked != nil {
		status += mutedStyle.Render("  [linking from " + m.marked.ID().Display() + "]")
	}
	help := helpStyle.Render("←/→ move · [/] lane · +/- resize · c clone · m/t link · r reset · tab pane · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, help)
}
