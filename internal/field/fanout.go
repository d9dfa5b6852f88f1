package field

import (
	"math"

	"github.com/on-the-ground/noise_ive_go/noisefn"
)

// Transform post-processes one reading of a shared source.
type Transform func(float64) float64

// Transforms cycled through by Fanout consumers.
var Transforms = []Transform{
	func(v float64) float64 { return v },
	func(v float64) float64 { return math.Abs(v)*2 - 1 },
	func(v float64) float64 { return v * v * math.Copysign(1, v) },
	func(v float64) float64 { return 1 - 2*math.Abs(v) },
	func(v float64) float64 { return math.Sin(v * math.Pi) },
}

// Fanout averages several consumers that all read Source at the same point.
// Without a cache in front of Source, each consumer re-evaluates it.
type Fanout[P noisefn.Point] struct {
	source    noisefn.NoiseFn[P]
	consumers []Transform
}

// NewFanout builds a Fanout with n consumers. Panics if n < 1.
func NewFanout[P noisefn.Point](source noisefn.NoiseFn[P], n int) *Fanout[P] {
	if n < 1 {
		panic("field: fanout needs at least one consumer")
	}
	consumers := make([]Transform, n)
	for i := range consumers {
		consumers[i] = Transforms[i%len(Transforms)]
	}
	return &Fanout[P]{source: source, consumers: consumers}
}

func (f *Fanout[P]) Get(point P) float64 {
	sum := 0.0
	for _, t := range f.consumers {
		sum += t(f.source.Get(point))
	}
	return sum / float64(len(f.consumers))
}
