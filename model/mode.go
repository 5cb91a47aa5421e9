package model

// Mode identifies one of the travel options the planner compares.
// The set is closed and known at build time.
type Mode string

const (
	ModeCar             Mode = "car"
	ModeBike            Mode = "bike"
	ModePublicTransport Mode = "public_transport"
)

// Modes returns every travel mode in declaration order. This order is
// also the tie-break order when two modes have equal emissions.
func Modes() []Mode {
	return []Mode{ModeCar, ModeBike, ModePublicTransport}
}
