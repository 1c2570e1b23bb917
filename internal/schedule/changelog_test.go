package schedule

import (
	"testing"
	"time"

	"github.com/dmkang/berthwatch/internal/models"
)

func entryFor(vessel string, shift time.Duration) (models.Identity, *Entry) {
	id := models.Identity{Vessel: vessel, Voyage: "1E"}
	return id, &Entry{
		ID:        id,
		Vessel:    id.Display(),
		Shift:     shift,
		ShiftText: models.FormatShift(shift),
	}
}

func TestUpsertKeepsOneRowPerIdentity(t *testing.T) {
	var l ChangeLog

	aID, a := entryFor("A", 2*time.Hour)
	bID, b := entryFor("B", 3*time.Hour)

	l.Upsert(aID, a)
	l.Upsert(bID, b)

	// Re-upserting A replaces its row in place, keeping log order.
	a2 := *a
	a2.ShiftText = "+5H"
	l.Upsert(aID, &a2)

	if l.Len() != 2 {
		t.Fatalf("log has %d rows, want 2", l.Len())
	}
	rows := l.Entries()
	if rows[0].ID != aID || rows[0].ShiftText != "+5H" {
		t.Errorf("first row = %s %s, want A +5H in original position", rows[0].ID.Vessel, rows[0].ShiftText)
	}
	if rows[1].ID != bID {
		t.Errorf("second row = %s, want B", rows[1].ID.Vessel)
	}
}

func TestUpsertCollapsesHistoricalDuplicates(t *testing.T) {
	var l ChangeLog

	aID, a := entryFor("A", time.Hour)
	bID, b := entryFor("B", time.Hour)

	// Seed duplicates directly; upsert must collapse all of them.
	l.entries = append(l.entries, *a, *b, *a, *a)

	fresh := *a
	fresh.ShiftText = "+9H"
	l.Upsert(aID, &fresh)

	if l.Len() != 2 {
		t.Fatalf("log has %d rows after collapse, want 2", l.Len())
	}
	rows := l.Entries()
	if rows[0].ID != aID || rows[0].ShiftText != "+9H" {
		t.Errorf("first row = %s %s, want collapsed A +9H", rows[0].ID.Vessel, rows[0].ShiftText)
	}
	if rows[1].ID != bID {
		t.Errorf("second row = %s, want B", rows[1].ID.Vessel)
	}
}

func TestUpsertNilClearsIdentity(t *testing.T) {
	var l ChangeLog

	aID, a := entryFor("A", time.Hour)
	l.Upsert(aID, a)
	l.Upsert(aID, nil)

	if l.Len() != 0 {
		t.Errorf("log has %d rows after clear, want 0", l.Len())
	}
	if l.Get(aID) != nil {
		t.Errorf("Get after clear = %+v, want nil", l.Get(aID))
	}

	// Clearing an absent identity is a no-op.
	l.Upsert(aID, nil)
	if l.Len() != 0 {
		t.Errorf("log has %d rows, want 0", l.Len())
	}
}

func TestMasterEntryHighlights(t *testing.T) {
	base := models.Placement{Berth: "PNC-1", ETA: hour(8), ETD: hour(14)}

	tests := []struct {
		name      string
		lane      string
		etaH      int
		want      Highlight
		wantShift string
	}{
		{"time shift only", "PNC-1", 12, HighlightNone, "+4H"},
		{"berth change same terminal", "PNC-2", 8, HighlightBerth, "+0H"},
		{"terminal change", "HJNC-1", 8, HighlightTerminal, "+0H"},
		{"moved earlier", "PNC-1", 5, HighlightNone, "-3H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := booking("A", "1E", tt.lane, tt.etaH, tt.etaH+6)
			e := masterEntry(b, base)
			if e == nil {
				t.Fatal("masterEntry returned nil for a changed placement")
			}
			if e.Highlight != tt.want {
				t.Errorf("highlight = %v, want %v", e.Highlight, tt.want)
			}
			if e.ShiftText != tt.wantShift {
				t.Errorf("shift = %q, want %q", e.ShiftText, tt.wantShift)
			}
		})
	}
}

func TestMasterEntryNilOnBaseline(t *testing.T) {
	base := models.Placement{Berth: "PNC-1", ETA: hour(8), ETD: hour(14)}
	b := booking("A", "1E", "PNC-1", 8, 14)

	if e := masterEntry(b, base); e != nil {
		t.Errorf("masterEntry = %+v, want nil for unchanged placement", e)
	}

	// A changed etd alone does not count: the diff key is (berth, eta).
	b.ETD = hour(20)
	if e := masterEntry(b, base); e != nil {
		t.Errorf("masterEntry = %+v, want nil for etd-only change", e)
	}
}

func TestMasterEntryRendering(t *testing.T) {
	base := models.Placement{Berth: "PNC-1", ETA: hour(8), ETD: hour(14)}
	b := booking("HYUNDAI HOPE", "0044W/0045E", "HJNC-2", 14, 20)

	e := masterEntry(b, base)
	if e == nil {
		t.Fatal("masterEntry returned nil")
	}
	if e.Vessel != "HYUNDAI HOPE (0045E)" {
		t.Errorf("vessel display = %q, want HYUNDAI HOPE (0045E)", e.Vessel)
	}
	if e.From != "PNC(1) 03/14 08:00" {
		t.Errorf("from = %q, want PNC(1) 03/14 08:00", e.From)
	}
	if e.To != "HJNC(2) 03/14 14:00" {
		t.Errorf("to = %q, want HJNC(2) 03/14 14:00", e.To)
	}
}

func TestSlaveEntryThreshold(t *testing.T) {
	base := models.Placement{Berth: "PNC-1", ETA: hour(8), ETD: hour(14)}

	// Shifts under an hour produce no row.
	b := booking("A", "1E", "PNC-1", 8, 14)
	b.ETA = hour(8).Add(30 * time.Minute)
	if e := slaveEntry(b, base); e != nil {
		t.Errorf("slaveEntry = %+v, want nil for sub-hour shift", e)
	}

	b.ETA = hour(9)
	e := slaveEntry(b, base)
	if e == nil || e.ShiftText != "+1H" {
		t.Errorf("slaveEntry = %+v, want +1H row at exactly one hour", e)
	}
}

func TestMasterClearsWhenMovedBackToBaseline(t *testing.T) {
	ws := loadWorkspace(t,
		booking("A", "1E", "PNC-1", 8, 14),
		booking("B", "2E", "HJNC-1", 8, 14),
	)
	id := models.Identity{Vessel: "A", Voyage: "1E"}

	// Move A out, commit, then move it back onto its baseline slot.
	if _, err := ws.ProposePlacement(id, 0, hour(30), 6*time.Hour); err != nil {
		t.Fatalf("ProposePlacement failed: %v", err)
	}
	if _, err := ws.CommitPlacement(id); err != nil {
		t.Fatalf("CommitPlacement failed: %v", err)
	}
	if ws.MasterLog().Get(id) == nil {
		t.Fatal("master log row missing after move")
	}

	if _, err := ws.ProposePlacement(id, 1, hour(8), 6*time.Hour); err != nil {
		t.Fatalf("ProposePlacement back failed: %v", err)
	}
	res, err := ws.CommitPlacement(id)
	if err != nil {
		t.Fatalf("CommitPlacement back failed: %v", err)
	}
	if res.Master != nil {
		t.Errorf("commit returned master row %+v, want nil after undo", res.Master)
	}
	if ws.MasterLog().Get(id) != nil {
		t.Errorf("master log still holds a row after the booking returned to baseline")
	}
}
