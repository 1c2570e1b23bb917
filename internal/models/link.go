package models

// LinkColor classifies a transshipment link between a discharge booking
// and a load booking by comparing their time windows.
type LinkColor string

const (
	// LinkGreen: the discharge vessel's eta or etd falls inside the load
	// vessel's window, so cargo can move alongside.
	LinkGreen LinkColor = "green"
	// LinkBlue: the discharge vessel clears out before the load vessel
	// arrives.
	LinkBlue LinkColor = "blue"
	// LinkRed: no workable connection; also the default fallback.
	LinkRed LinkColor = "red"
)

// Priority returns the transshipment-table sort rank: red rows first,
// then green, then blue.
func (c LinkColor) Priority() int {
	switch c {
	case LinkRed:
		return 0
	case LinkGreen:
		return 1
	case LinkBlue:
		return 2
	default:
		return 3
	}
}

func (c LinkColor) String() string {
	return string(c)
}
