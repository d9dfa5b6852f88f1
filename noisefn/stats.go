package noisefn

// Stats counts cache lookups.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Lookups is Hits + Misses.
func (s Stats) Lookups() uint64 {
	return s.Hits + s.Misses
}

// HitRatio is Hits / Lookups, or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	if s.Lookups() == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Lookups())
}
