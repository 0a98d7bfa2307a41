package domain

// Detour is the additional travel time a shared ride would impose on the
// primary trip, or Unroutable when the provider could not route a leg.
// The tagged form keeps "worst real detour" distinct from "could not
// compute" without a numeric sentinel.
//
// Detour values are not clamped: inconsistent provider data can yield a
// negative routed detour and it is carried unchanged.
type Detour struct {
	seconds  int
	routable bool
}

// Routed builds a detour with a known duration in seconds.
func Routed(seconds int) Detour { return Detour{seconds: seconds, routable: true} }

// Unroutable builds a detour for a candidate with at least one leg the
// provider could not route.
func Unroutable() Detour { return Detour{} }

// Routable reports whether the detour carries a duration.
func (d Detour) Routable() bool { return d.routable }

// Seconds returns the detour duration; the boolean is false for unroutable
// detours, which carry no duration at all.
func (d Detour) Seconds() (int, bool) { return d.seconds, d.routable }

// Less orders routed detours ascending and places every unroutable detour
// after every routed one. Two unroutable detours have no relative order;
// callers needing determinism must sort stably.
func (d Detour) Less(other Detour) bool {
	switch {
	case d.routable && other.routable:
		return d.seconds < other.seconds
	case d.routable:
		return true
	default:
		return false
	}
}
