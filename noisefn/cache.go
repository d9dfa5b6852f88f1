package noisefn

// Cache is a NoiseFn that caches the last value produced by its source.
//
// If Get is called with the same point as the previous call, the cached value
// is returned. Otherwise the source is evaluated, the cache is overwritten
// with the new point and value, and the fresh value is returned.
//
// The zero value is not usable; construct with NewCache.
type Cache[P Point] struct {
	source NoiseFn[P]

	point     P
	value     float64
	populated bool

	stats Stats
}

// NewCache wraps source. The cache starts empty, so the first Get is always
// evaluated by source. Panics if source is nil.
func NewCache[P Point](source NoiseFn[P]) *Cache[P] {
	if source == nil {
		panic("noisefn: NewCache with nil source")
	}
	return &Cache[P]{source: source}
}

// Source returns the wrapped NoiseFn.
func (c *Cache[P]) Source() NoiseFn[P] {
	return c.source
}

func (c *Cache[P]) Get(point P) float64 {
	if c.populated && c.point == point {
		c.stats.Hits++
		return c.value
	}

	// A panicking source leaves the previous entry in place.
	value := c.source.Get(point)
	c.point = point
	c.value = value
	c.populated = true
	c.stats.Misses++
	return value
}

// Stats returns the hit and miss counts since construction.
func (c *Cache[P]) Stats() Stats {
	return c.stats
}
