package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmkang/berthwatch/internal/models"
)

// renderSchedulePane draws the per-lane timeline: one section per lane,
// bookings ordered by eta, the cursor row highlighted.
func (m Model) renderSchedulePane(width int) string {
	var b strings.Builder

	title := "SCHEDULE"
	if m.activePane == PaneSchedule {
		title = activeTitleStyle.Render(title)
	} else {
		title = titleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("no bookings loaded"))
		return m.paneFrame(PaneSchedule, width, b.String())
	}

	lane := ""
	for i, row := range m.rows {
		if row.Berth != lane {
			lane = row.Berth
			b.WriteString("\n")
			b.WriteString(labelStyle.Render(models.LaneDisplay(lane)))
			b.WriteString("\n")
		}
		b.WriteString(m.renderBookingRow(i, row))
		b.WriteString("\n")
	}

	return m.paneFrame(PaneSchedule, width, b.String())
}

func (m Model) renderBookingRow(i int, row *models.Booking) string {
	line := fmt.Sprintf("  %-28s %s — %s",
		row.ID().Display(),
		models.FormatShort(row.ETA),
		models.FormatShort(row.ETD))

	switch row.Role {
	case models.CopyFirst:
		line += " " + firstBadgeStyle.Render("1ST")
	case models.CopySecond:
		line += " " + secondBadgeStyle.Render("2ND")
	}
	if row == m.marked {
		line += " " + mutedStyle.Render("*")
	}

	if i == m.selected && m.activePane == PaneSchedule {
		return selectedStyle.Render(line)
	}
	return valueStyle.Render(line)
}

// renderLogPane wraps one of the change-log tables in a pane frame.
func (m Model) renderLogPane(title string, tbl table.Model, pane ActivePane) string {
	styled := titleStyle.Render(title)
	if m.activePane == pane {
		styled = activeTitleStyle.Render(title)
	}
	body := styled + "\n" + tbl.View()
	return m.paneFrame(pane, m.width/2-4, body)
}

// renderLinkPane lists recorded transshipment links in their table order.
func (m Model) renderLinkPane() string {
	var b strings.Builder

	title := "LINKS"
	if m.activePane == PaneLinks {
		title = activeTitleStyle.Render(title)
	} else {
		title = titleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	rows := m.ws.Links()
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("no links recorded"))
	}
	for _, r := range rows {
		var style lipgloss.Style
		switch r.Color {
		case models.LinkGreen:
			style = linkGreenStyle
		case models.LinkBlue:
			style = linkBlueStyle
		default:
			style = linkRedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s -> %s", r.Discharge.Display(), r.Load.Display())))
		b.WriteString(mutedStyle.Render("  " + string(r.Color)))
		b.WriteString("\n")
	}

	return m.paneFrame(PaneLinks, m.width/2-4, b.String())
}

func (m Model) paneFrame(pane ActivePane, width int, body string) string {
	style := paneStyle
	if m.activePane == pane {
		style = activePaneStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(body)
}
