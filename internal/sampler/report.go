package sampler

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// Report summarises one pass over the grid.
type Report struct {
	RunID uuid.UUID
	Span  timespan.TimeSpan

	Cached     bool
	Dimensions int
	Consumers  int
	Samples    uint64

	// SourceCalls counts evaluations of the white noise source itself.
	SourceCalls uint64
	// Hits and Misses are zero when the run is uncached.
	Hits   uint64
	Misses uint64

	// Digest fingerprints every sample in grid order.
	Digest uint64
}

// CallsPerSample is SourceCalls / Samples.
func (r Report) CallsPerSample() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.SourceCalls) / float64(r.Samples)
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"run:              %s\n"+
			"elapsed:          %v\n"+
			"cached:           %t\n"+
			"dimensions:       %d\n"+
			"consumers:        %d\n"+
			"samples:          %d\n"+
			"source calls:     %d (%.2f per sample)\n"+
			"cache hits:       %d\n"+
			"cache misses:     %d\n"+
			"digest:           %016x\n",
		r.RunID, r.Span.Duration(), r.Cached, r.Dimensions, r.Consumers, r.Samples,
		r.SourceCalls, r.CallsPerSample(), r.Hits, r.Misses, r.Digest,
	)
	return int64(n), err
}
