package models

import (
	"strings"
	"time"
)

// CopyRole marks a booking's side of a clone pair.
type CopyRole string

const (
	CopyNone   CopyRole = ""
	CopyFirst  CopyRole = "1st"
	CopySecond CopyRole = "2nd"
)

// Identity is the stable booking key within a port: vessel name plus
// carrier voyage code. A clone shares its original's identity until one
// side is re-voyaged upstream.
type Identity struct {
	Vessel string
	Voyage string
}

// Display renders the identity the way the change-log and transshipment
// tables show it, e.g. "HYUNDAI HOPE (0045E)".
func (id Identity) Display() string {
	return id.Vessel + " (" + DisplayVoyage(id.Voyage) + ")"
}

// Placement is a booking's position on the board: composite lane key plus
// the occupied time interval. Baselines are stored as Placements.
type Placement struct {
	Berth string
	ETA   time.Time
	ETD   time.Time
}

// Booking represents one vessel's scheduled occupation of a berth lane.
// Required fields are typed; everything else the roster carried rides
// along untouched in Extra.
type Booking struct {
	Vessel string
	Voyage string
	Berth  string // composite "TERMINAL-BERTH" lane key
	ETA    time.Time
	ETD    time.Time
	Line   string
	Route  string
	Extra  map[string]string

	Role CopyRole
	// Linked holds the clone counterpart's identity. Nil except for
	// clone pairs.
	Linked *Identity
	// FreshClone exempts a just-created clone from collision resolution
	// until its first explicit move.
	FreshClone bool
}

// ID returns the booking's identity key.
func (b *Booking) ID() Identity {
	return Identity{Vessel: b.Vessel, Voyage: b.Voyage}
}

// Duration returns the occupied interval length.
func (b *Booking) Duration() time.Duration {
	return b.ETD.Sub(b.ETA)
}

// Placement returns the booking's current placement.
func (b *Booking) Placement() Placement {
	return Placement{Berth: b.Berth, ETA: b.ETA, ETD: b.ETD}
}

// Terminal returns the terminal prefix of the composite lane key.
func (b *Booking) Terminal() string {
	return TerminalOf(b.Berth)
}

// Clone returns a deep copy of the booking's data. Role, linkage and the
// fresh-clone flag are not carried over; the clone operator assigns those.
func (b *Booking) Clone() *Booking {
	c := *b
	c.Role = CopyNone
	c.Linked = nil
	c.FreshClone = false
	if b.Extra != nil {
		c.Extra = make(map[string]string, len(b.Extra))
		for k, v := range b.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

// TerminalOf returns the terminal portion of a composite "TERMINAL-BERTH"
// lane key. A key without a separator is its own terminal.
func TerminalOf(lane string) string {
	if i := strings.Index(lane, "-"); i >= 0 {
		return lane[:i]
	}
	return lane
}

// LaneDisplay renders a composite lane key for log output: "PNC-3"
// becomes "PNC(3)".
func LaneDisplay(lane string) string {
	if i := strings.Index(lane, "-"); i >= 0 {
		return lane[:i] + "(" + lane[i+1:] + ")"
	}
	return lane
}
