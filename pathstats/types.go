package pathstats

import "errors"

// Sentinel errors for histogram construction and link ranking.
var (
	// ErrNoSamples is returned when a histogram is built from no lengths.
	ErrNoSamples = errors.New("pathstats: no samples")

	// ErrBadLength is returned for a hop count below 1.
	ErrBadLength = errors.New("pathstats: path length must be >= 1")

	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("pathstats: graph is nil")
)

// Bucket is one row of a Histogram: how many samples had exactly Hops links.
type Bucket struct {
	Hops     int
	Count    int
	Fraction float64
}
