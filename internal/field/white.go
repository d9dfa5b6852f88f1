package field

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/noise_ive_go/noisefn"
)

// White is uncorrelated value noise: every distinct point hashes to an
// independent value in [-1, 1]. It is deterministic for a given Seed.
type White[P noisefn.Point] struct {
	Seed uint64
}

func (w White[P]) Get(point P) float64 {
	var buf [8 * 5]byte
	binary.LittleEndian.PutUint64(buf[:8], w.Seed)
	n := 8
	for i := 0; i < len(point); i++ {
		binary.LittleEndian.PutUint64(buf[n:n+8], math.Float64bits(point[i]))
		n += 8
	}
	h := xxhash.Sum64(buf[:n])
	// top 53 bits give a uniform float in [0, 1)
	unit := float64(h>>11) / (1 << 53)
	return unit*2 - 1
}
