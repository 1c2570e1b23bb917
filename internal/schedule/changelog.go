package schedule

import (
	"time"

	"github.com/dmkang/berthwatch/internal/models"
)

// Highlight classifies a master-log "to" column for rendering.
type Highlight int

const (
	// HighlightNone: the booking stayed on its baseline lane.
	HighlightNone Highlight = iota
	// HighlightBerth: different berth within the same terminal.
	HighlightBerth
	// HighlightTerminal: the booking crossed to another terminal.
	HighlightTerminal
)

// Entry is one change-log row. Master rows carry From/To lane+time
// strings diffed against the baseline; slave rows carry short old/new
// timestamps. Both carry the signed cumulative shift from baseline.
type Entry struct {
	ID        models.Identity
	Vessel    string // display form, e.g. "HYUNDAI HOPE (0045E)"
	Role      models.CopyRole
	From      string
	To        string
	Highlight Highlight
	Shift     time.Duration
	ShiftText string
}

// ChangeLog is an ordered, upsert-by-identity log. The master log holds
// direct user edits, the slave log holds resolver-induced shifts; both
// use the same primitive.
type ChangeLog struct {
	entries []Entry
}

// Upsert removes every existing entry for id and, if e is non-nil,
// inserts it where the first removed entry sat, or at the end if the
// identity was not present. Passing nil clears the identity from the log.
// Historical duplicates collapse to the single new entry.
func (l *ChangeLog) Upsert(id models.Identity, e *Entry) {
	pos := -1
	kept := l.entries[:0]
	for _, cur := range l.entries {
		if cur.ID == id {
			if pos < 0 {
				pos = len(kept)
			}
			continue
		}
		kept = append(kept, cur)
	}
	l.entries = kept

	if e == nil {
		return
	}
	if pos < 0 {
		pos = len(l.entries)
	}
	l.entries = append(l.entries, Entry{})
	copy(l.entries[pos+1:], l.entries[pos:])
	l.entries[pos] = *e
}

// Get returns the entry for id, or nil if the identity is not logged.
func (l *ChangeLog) Get(id models.Identity) *Entry {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return &l.entries[i]
		}
	}
	return nil
}

// Entries returns a copy of the log rows in order.
func (l *ChangeLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of rows.
func (l *ChangeLog) Len() int {
	return len(l.entries)
}

// Clear empties the log.
func (l *ChangeLog) Clear() {
	l.entries = nil
}

// masterEntry builds a master-log row for b diffed against its baseline,
// or nil when the booking sits exactly on its baseline lane and eta (the
// edit was undone and any prior row must be cleared).
func masterEntry(b *models.Booking, base models.Placement) *Entry {
	if b.Berth == base.Berth && b.ETA.Equal(base.ETA) {
		return nil
	}

	hl := HighlightNone
	if models.TerminalOf(base.Berth) != b.Terminal() {
		hl = HighlightTerminal
	} else if base.Berth != b.Berth {
		hl = HighlightBerth
	}

	shift := b.ETA.Sub(base.ETA)
	return &Entry{
		ID:        b.ID(),
		Vessel:    b.ID().Display(),
		Role:      b.Role,
		From:      models.LaneDisplay(base.Berth) + " " + models.FormatShort(base.ETA),
		To:        models.LaneDisplay(b.Berth) + " " + models.FormatShort(b.ETA),
		Highlight: hl,
		Shift:     shift,
		ShiftText: models.FormatShift(shift),
	}
}

// slaveEntry builds a slave-log row for a booking displaced from its
// baseline eta, or nil when the cumulative shift is under one hour.
func slaveEntry(b *models.Booking, base models.Placement) *Entry {
	shift := b.ETA.Sub(base.ETA)
	abs := shift
	if abs < 0 {
		abs = -abs
	}
	if abs < time.Hour {
		return nil
	}

	return &Entry{
		ID:        b.ID(),
		Vessel:    b.ID().Display(),
		Role:      b.Role,
		From:      models.FormatShort(base.ETA),
		To:        models.FormatShort(b.ETA),
		Shift:     shift,
		ShiftText: models.FormatShift(shift),
	}
}
