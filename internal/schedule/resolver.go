package schedule

import (
	"log"
	"sort"
	"time"

	"github.com/dmkang/berthwatch/internal/models"
)

// maxResolvePasses bounds the resolver against malformed input. A lane of
// finite bookings pushed only forward settles well inside this ceiling.
const maxResolvePasses = 50

// CommitResult reports what a commit changed, for the host to render.
type CommitResult struct {
	// Master is the direct-edit log row for the mover, nil when the
	// booking sits back on its baseline (any prior row was cleared).
	Master *Entry
	// Slaves holds the cascade rows refreshed by this commit, ordered by
	// descending absolute shift.
	Slaves []Entry
}

// CommitPlacement finishes a placement edit for the identified booking:
// it resolves collisions on the booking's lane, upserts the master log
// row against the baseline, and recomputes the slave log rows for every
// other booking on the lane.
func (ws *Workspace) CommitPlacement(id models.Identity) (CommitResult, error) {
	b, err := ws.Find(id)
	if err != nil {
		return CommitResult{}, err
	}
	return ws.CommitFor(b), nil
}

// CommitFor is CommitPlacement addressed by handle.
func (ws *Workspace) CommitFor(b *models.Booking) CommitResult {
	var res CommitResult

	// An auto-placed clone the user has not touched yet: no finalized
	// placement exists, so there is nothing to resolve or record.
	if b.FreshClone && !ws.proposed[b] {
		return res
	}

	// Master row: diff against the baseline, not the previous row. The
	// upsert collapses any earlier row for the same identity.
	if base, ok := ws.baselines[b.ID()]; ok {
		e := masterEntry(b, base)
		ws.master.Upsert(b.ID(), e)
		res.Master = e
	}

	// A fresh clone sits where the clone operator put it; neighbors are
	// only pushed once the user has moved it deliberately. This first
	// explicit move consumes the exemption.
	if b.FreshClone {
		b.FreshClone = false
	} else {
		ws.resolveLane(b.Berth)
		res.Slaves = ws.refreshSlaves(b)
	}

	delete(ws.proposed, b)
	return res
}

// resolveLane restores the no-unsafe-overlap invariant on one lane:
// bookings in eta order are pushed forward, never backward, until every
// adjacent pair is separated by the safety gap or the pass ceiling hits.
func (ws *Workspace) resolveLane(lane string) {
	vs := ws.laneBookings(lane)
	sort.SliceStable(vs, func(i, j int) bool {
		return vs[i].ETA.Before(vs[j].ETA)
	})

	for pass := 0; pass < maxResolvePasses; pass++ {
		changed := false
		for i := 0; i < len(vs)-1; i++ {
			v1, v2 := vs[i], vs[i+1]
			safe := v1.ETD.Add(ws.gap)
			if v2.ETA.Before(safe) {
				delta := safe.Sub(v2.ETA)
				v2.ETA = v2.ETA.Add(delta)
				v2.ETD = v2.ETD.Add(delta)
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	log.Printf("schedule: lane %s did not settle within %d passes, accepting partial state", lane, maxResolvePasses)
}

// refreshSlaves recomputes the slave log for every booking on the mover's
// lane except the mover itself. Rows always reflect the cumulative
// displacement from baseline; displacements under an hour clear any
// existing row. Returns the refreshed rows, largest shift first.
func (ws *Workspace) refreshSlaves(mover *models.Booking) []Entry {
	var out []Entry
	for _, v := range ws.laneBookings(mover.Berth) {
		if v == mover {
			continue
		}
		base, ok := ws.baselines[v.ID()]
		if !ok {
			continue
		}
		e := slaveEntry(v, base)
		ws.slave.Upsert(v.ID(), e)
		if e != nil {
			out = append(out, *e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return absShift(out[i].Shift) > absShift(out[j].Shift)
	})
	return out
}

func absShift(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
