package sampler

import "errors"

var ErrDigestMismatch = errors.New("cached and uncached samples differ")
