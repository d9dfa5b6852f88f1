package noisefn_test

import (
	"testing"

	"github.com/on-the-ground/noise_ive_go/noisefn"

	"github.com/stretchr/testify/assert"
)

func TestMemoize(t *testing.T) {
	count := 0
	fn := noisefn.Memoize(func(p [2]float64) float64 {
		count++
		return p[0] * p[1]
	})

	assert.Equal(t, 6.0, fn([2]float64{2, 3}))
	assert.Equal(t, 6.0, fn([2]float64{2, 3})) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 12.0, fn([2]float64{3, 4}))
	assert.Equal(t, 6.0, fn([2]float64{2, 3}))
	assert.Equal(t, 3, count)
}

func TestMemoize_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		noisefn.Memoize[[1]float64](nil)
	})
}
