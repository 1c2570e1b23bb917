package schedule

import (
	"sort"
	"time"

	"github.com/dmkang/berthwatch/internal/models"
)

// Classify assigns a transshipment color to a discharge candidate a
// against a load target b:
//
//   - green when a's eta or etd falls within [b.eta, b.etd];
//   - blue when a departs strictly before b arrives;
//   - red otherwise, including a arriving after b has left.
func Classify(a, b *models.Booking) models.LinkColor {
	if within(a.ETA, b.ETA, b.ETD) || within(a.ETD, b.ETA, b.ETD) {
		return models.LinkGreen
	}
	if a.ETD.Before(b.ETA) {
		return models.LinkBlue
	}
	return models.LinkRed
}

func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}

// LinkRef is one classified discharge association under a load booking.
type LinkRef struct {
	Discharge models.Identity
	Color     models.LinkColor
}

// LinkRow is a flattened transshipment-table row.
type LinkRow struct {
	Load      models.Identity
	Discharge models.Identity
	Color     models.LinkColor
}

// LinkTable maps each load booking to its recorded discharge links. The
// same discharge may appear more than once under a load if recorded
// again; no dedup is applied.
type LinkTable struct {
	order  []models.Identity
	byLoad map[models.Identity][]LinkRef
}

// NewLinkTable returns an empty table.
func NewLinkTable() *LinkTable {
	return &LinkTable{byLoad: make(map[models.Identity][]LinkRef)}
}

// Add appends a discharge link under the load booking.
func (t *LinkTable) Add(load models.Identity, ref LinkRef) {
	if _, ok := t.byLoad[load]; !ok {
		t.order = append(t.order, load)
	}
	t.byLoad[load] = append(t.byLoad[load], ref)
}

// Rows returns the table in render order: loads in insertion order, and
// within each load the discharges sorted red first, then green, then
// blue, ties kept in insertion order.
func (t *LinkTable) Rows() []LinkRow {
	var rows []LinkRow
	for _, load := range t.order {
		refs := make([]LinkRef, len(t.byLoad[load]))
		copy(refs, t.byLoad[load])
		sort.SliceStable(refs, func(i, j int) bool {
			return refs[i].Color.Priority() < refs[j].Color.Priority()
		})
		for _, ref := range refs {
			rows = append(rows, LinkRow{Load: load, Discharge: ref.Discharge, Color: ref.Color})
		}
	}
	return rows
}

// Len returns the total number of recorded links.
func (t *LinkTable) Len() int {
	n := 0
	for _, refs := range t.byLoad {
		n += len(refs)
	}
	return n
}

// Clear empties the table.
func (t *LinkTable) Clear() {
	t.order = nil
	t.byLoad = make(map[models.Identity][]LinkRef)
}
