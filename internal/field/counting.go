package field

import "github.com/on-the-ground/noise_ive_go/noisefn"

// Counting passes every Get through to Source and counts the calls.
type Counting[P noisefn.Point] struct {
	Source noisefn.NoiseFn[P]
	calls  uint64
}

func NewCounting[P noisefn.Point](source noisefn.NoiseFn[P]) *Counting[P] {
	return &Counting[P]{Source: source}
}

func (c *Counting[P]) Get(point P) float64 {
	c.calls++
	return c.Source.Get(point)
}

func (c *Counting[P]) Calls() uint64 {
	return c.calls
}
