package schedule

import (
	"github.com/dmkang/berthwatch/internal/models"
)

// Clone duplicates a booking onto the same lane, placed just past the
// lane's rightmost departure plus a fixed gap (or at the original's own
// start on an otherwise empty lane). The original becomes the pair's
// "1st", the clone its "2nd", each linked to the other by identity. No
// log row is written and no baseline is derived; the clone sits at its
// auto-placed position until the user moves it, and that first move is
// exempt from collision resolution.
func (ws *Workspace) Clone(id models.Identity) (*models.Booking, error) {
	b, err := ws.Find(id)
	if err != nil {
		return nil, err
	}

	lane := ws.laneBookings(b.Berth)
	c := b.Clone()
	if len(lane) > 0 {
		right := lane[0].ETD
		for _, v := range lane[1:] {
			if v.ETD.After(right) {
				right = v.ETD
			}
		}
		c.ETA = right.Add(CloneGap)
	}
	c.ETD = c.ETA.Add(b.Duration())

	link := b.ID()
	b.Role = models.CopyFirst
	b.Linked = &link
	c.Role = models.CopySecond
	cl := link
	c.Linked = &cl
	c.FreshClone = true

	ws.bookings = append(ws.bookings, c)
	return c, nil
}

// ClassifyLink classifies a prospective transshipment from a discharge
// booking to a load booking. Pure; nothing is recorded.
func (ws *Workspace) ClassifyLink(srcID, dstID models.Identity) (models.LinkColor, error) {
	src, err := ws.Find(srcID)
	if err != nil {
		return "", err
	}
	dst, err := ws.Find(dstID)
	if err != nil {
		return "", err
	}
	return Classify(src, dst), nil
}

// RecordLink appends a classified discharge association under the load
// booking. Both sides must be live.
func (ws *Workspace) RecordLink(loadID, dischID models.Identity, color models.LinkColor) error {
	if _, err := ws.Find(loadID); err != nil {
		return err
	}
	if _, err := ws.Find(dischID); err != nil {
		return err
	}
	ws.links.Add(loadID, LinkRef{Discharge: dischID, Color: color})
	return nil
}

// Links returns the transshipment table rows in render order.
func (ws *Workspace) Links() []LinkRow {
	return ws.links.Rows()
}

// LinkCount returns the number of recorded transshipment links.
func (ws *Workspace) LinkCount() int {
	return ws.links.Len()
}
