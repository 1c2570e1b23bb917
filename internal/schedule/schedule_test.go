package schedule

import (
	"testing"
	"time"

	"github.com/dmkang/berthwatch/internal/models"
)

// Shared test fixtures. Hours count from midnight 2025/03/14 so scenario
// times read like clock times on day one.

var day = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func hour(h int) time.Time {
	return day.Add(time.Duration(h) * time.Hour)
}

func booking(vessel, voyage, lane string, etaH, etdH int) *models.Booking {
	return &models.Booking{
		Vessel: vessel,
		Voyage: voyage,
		Berth:  lane,
		ETA:    hour(etaH),
		ETD:    hour(etdH),
	}
}

func loadWorkspace(t *testing.T, bookings ...*models.Booking) *Workspace {
	t.Helper()
	ws := NewWorkspace("KRPUS")
	if err := ws.Load(bookings); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return ws
}

func mustFind(t *testing.T, ws *Workspace, vessel, voyage string) *models.Booking {
	t.Helper()
	b, err := ws.Find(models.Identity{Vessel: vessel, Voyage: voyage})
	if err != nil {
		t.Fatalf("Find(%s %s) failed: %v", vessel, voyage, err)
	}
	return b
}

// checkLane asserts that every pair of bookings on the lane is either
// disjoint or separated by at least the safety gap.
func checkLane(t *testing.T, ws *Workspace, lane string) {
	t.Helper()
	vs := ws.laneBookings(lane)
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			a, b := vs[i], vs[j]
			if a.ETA.After(b.ETA) {
				a, b = b, a
			}
			if b.ETA.Before(a.ETD.Add(SafetyGap)) {
				t.Errorf("unsafe overlap on %s: %s [%v,%v] vs %s [%v,%v]",
					lane, a.Vessel, a.ETA, a.ETD, b.Vessel, b.ETA, b.ETD)
			}
		}
	}
}
