package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dmkang/berthwatch/internal/models"
)

var (
	// ErrBookingNotFound is returned when an operation names an identity
	// with no live booking in the workspace.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrPortNotFound is returned by Board lookups for unloaded ports.
	ErrPortNotFound = errors.New("port not loaded")
)

const (
	// SafetyGap is the minimum buffer enforced between consecutive
	// bookings on a lane.
	SafetyGap = 2 * time.Hour
	// CloneGap separates a clone from the rightmost booking on its lane.
	CloneGap = 2 * time.Hour
	// originMargin pads the workspace time origin ahead of the earliest
	// loaded arrival.
	originMargin = 48 * time.Hour
)

// Workspace owns one port's live bookings, their baselines, the lane
// list, both change logs and the transshipment link table. Workspaces
// are independent of each other and not safe for concurrent use.
type Workspace struct {
	Port string

	bookings  []*models.Booking
	baselines map[models.Identity]models.Placement
	lanes     []string
	origin    time.Time

	master *ChangeLog
	slave  *ChangeLog
	links  *LinkTable

	gap time.Duration

	// proposed tracks bookings snapped since their last commit, so a
	// fresh clone's exemption is consumed only by an actual move.
	proposed map[*models.Booking]bool
}

// NewWorkspace returns an empty workspace for the given port code.
func NewWorkspace(port string) *Workspace {
	return &Workspace{
		Port:      port,
		baselines: make(map[models.Identity]models.Placement),
		master:    &ChangeLog{},
		slave:     &ChangeLog{},
		links:     NewLinkTable(),
		gap:       SafetyGap,
		proposed:  make(map[*models.Booking]bool),
	}
}

// Load replaces the live booking set with the given roster, re-derives
// baselines, the lane list and the time origin, and clears both logs and
// the link table. A record missing a required field fails the whole load
// and leaves the workspace unchanged.
func (ws *Workspace) Load(bookings []*models.Booking) error {
	for _, b := range bookings {
		if err := validate(b); err != nil {
			return fmt.Errorf("loading port %s: %w", ws.Port, err)
		}
	}

	ws.bookings = nil
	ws.baselines = make(map[models.Identity]models.Placement)
	laneSet := make(map[string]bool)

	for _, b := range bookings {
		ws.bookings = append(ws.bookings, b)
		ws.baselines[b.ID()] = b.Placement()
		laneSet[b.Berth] = true
	}

	ws.lanes = ws.lanes[:0]
	for lane := range laneSet {
		ws.lanes = append(ws.lanes, lane)
	}
	sort.Strings(ws.lanes)

	ws.origin = deriveOrigin(ws.bookings)
	ws.master.Clear()
	ws.slave.Clear()
	ws.links.Clear()
	ws.proposed = make(map[*models.Booking]bool)
	return nil
}

// Reset restores every live booking from its baseline and clears both
// logs and the link table. Baselines themselves are untouched. Clones
// have no baseline of their own and are dropped by a reset.
func (ws *Workspace) Reset() {
	restored := ws.bookings[:0]
	for _, b := range ws.bookings {
		base, ok := ws.baselines[b.ID()]
		if !ok || b.Role == models.CopySecond {
			continue
		}
		b.Berth = base.Berth
		b.ETA = base.ETA
		b.ETD = base.ETD
		b.Role = models.CopyNone
		b.Linked = nil
		b.FreshClone = false
		restored = append(restored, b)
	}
	ws.bookings = restored
	ws.master.Clear()
	ws.slave.Clear()
	ws.links.Clear()
	ws.proposed = make(map[*models.Booking]bool)
}

func validate(b *models.Booking) error {
	switch {
	case b.Vessel == "":
		return errors.New("booking record missing vessel name")
	case b.Berth == "":
		return fmt.Errorf("booking %s missing berth", b.ID().Display())
	case b.ETA.IsZero() || b.ETD.IsZero():
		return fmt.Errorf("booking %s missing eta/etd", b.ID().Display())
	case !b.ETD.After(b.ETA):
		return fmt.Errorf("booking %s has etd %s not after eta %s",
			b.ID().Display(), models.FormatDate(b.ETD), models.FormatDate(b.ETA))
	}
	return nil
}

// deriveOrigin anchors the hour grid two days before the earliest
// arrival, truncated to midnight, matching the board's drawn range.
func deriveOrigin(bookings []*models.Booking) time.Time {
	if len(bookings) == 0 {
		return time.Time{}
	}
	min := bookings[0].ETA
	for _, b := range bookings[1:] {
		if b.ETA.Before(min) {
			min = b.ETA
		}
	}
	min = min.Add(-originMargin)
	return time.Date(min.Year(), min.Month(), min.Day(), 0, 0, 0, 0, min.Location())
}

// Origin returns the workspace's hour-grid origin.
func (ws *Workspace) Origin() time.Time {
	return ws.origin
}

// Lanes returns the ordered lane list derived at load time.
func (ws *Workspace) Lanes() []string {
	out := make([]string, len(ws.lanes))
	copy(out, ws.lanes)
	return out
}

// Bookings returns the live booking slice. Callers must not reorder it.
func (ws *Workspace) Bookings() []*models.Booking {
	return ws.bookings
}

// Find returns the first live booking with the given identity. After a
// clone two live bookings share an identity; Find resolves to the earlier
// one (the original), and hosts address the clone through the handle
// returned by Clone.
func (ws *Workspace) Find(id models.Identity) (*models.Booking, error) {
	for _, b := range ws.bookings {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id.Display())
}

// MasterLog returns the direct-edit change log.
func (ws *Workspace) MasterLog() *ChangeLog {
	return ws.master
}

// SlaveLog returns the cascade change log.
func (ws *Workspace) SlaveLog() *ChangeLog {
	return ws.slave
}

// laneBookings returns every live booking on the given lane.
func (ws *Workspace) laneBookings(lane string) []*models.Booking {
	var out []*models.Booking
	for _, b := range ws.bookings {
		if b.Berth == lane {
			out = append(out, b)
		}
	}
	return out
}

// Board is a registry of independent per-port workspaces, one per port
// code, mirroring how a multi-port schedule is edited one port at a time.
type Board struct {
	ports map[string]*Workspace
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{ports: make(map[string]*Workspace)}
}

// LoadPort (re)loads a port's roster, creating its workspace on first
// use. The load is atomic: on a validation error an existing workspace
// keeps its previous state.
func (bd *Board) LoadPort(port string, bookings []*models.Booking) error {
	ws, ok := bd.ports[port]
	if !ok {
		ws = NewWorkspace(port)
	}
	if err := ws.Load(bookings); err != nil {
		return err
	}
	bd.ports[port] = ws
	return nil
}

// ResetPort restores a port's bookings from their baselines.
func (bd *Board) ResetPort(port string) error {
	ws, err := bd.Workspace(port)
	if err != nil {
		return err
	}
	ws.Reset()
	return nil
}

// Workspace returns the workspace for a loaded port.
func (bd *Board) Workspace(port string) (*Workspace, error) {
	ws, ok := bd.ports[port]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPortNotFound, port)
	}
	return ws, nil
}

// Ports returns the loaded port codes in sorted order.
func (bd *Board) Ports() []string {
	out := make([]string, 0, len(bd.ports))
	for p := range bd.ports {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
