package schedule

import (
	"math"
	"time"

	"github.com/dmkang/berthwatch/internal/models"
)

// ProposePlacement snaps a raw placement proposal for the identified
// booking onto the hour grid and applies it: the lane index is clamped to
// the lane list, the start rounds to the nearest whole hour from the
// workspace origin, and the duration rounds to whole hours with a floor
// of one hour. Inputs are corrected, never rejected.
func (ws *Workspace) ProposePlacement(id models.Identity, lane int, rawStart time.Time, rawDur time.Duration) (models.Placement, error) {
	b, err := ws.Find(id)
	if err != nil {
		return models.Placement{}, err
	}
	return ws.ProposeFor(b, lane, rawStart, rawDur), nil
}

// ProposeFor is ProposePlacement addressed by handle, for bookings whose
// identity is ambiguous after a clone.
func (ws *Workspace) ProposeFor(b *models.Booking, lane int, rawStart time.Time, rawDur time.Duration) models.Placement {
	if lane < 0 {
		lane = 0
	}
	if lane > len(ws.lanes)-1 {
		lane = len(ws.lanes) - 1
	}

	hours := math.Round(rawStart.Sub(ws.origin).Hours())
	eta := ws.origin.Add(time.Duration(hours) * time.Hour)

	durHours := math.Round(rawDur.Hours())
	if durHours < 1 {
		durHours = 1
	}
	etd := eta.Add(time.Duration(durHours) * time.Hour)

	if lane >= 0 && lane < len(ws.lanes) {
		b.Berth = ws.lanes[lane]
	}
	b.ETA = eta
	b.ETD = etd
	ws.proposed[b] = true
	return b.Placement()
}
