package pathstats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Histogram buckets path lengths by hop count. Bucket h (h >= 1) holds the
// number of samples of exactly h hops; buckets run contiguously from 1 to
// the longest sample, so empty buckets in between are kept with Count 0.
//
// A Histogram is immutable once built and safe for concurrent reads.
type Histogram struct {
	counts []int // counts[h-1] = samples with h hops
	total  int
}

// NewHistogram buckets lengths by hop count.
//
// Errors:
//   - ErrNoSamples: lengths is empty.
//   - ErrBadLength: some length is < 1.
//
// Complexity: O(n + max(lengths)).
func NewHistogram(lengths []int) (*Histogram, error) {
	if len(lengths) == 0 {
		return nil, ErrNoSamples
	}
	longest := 0
	for i, l := range lengths {
		if l < 1 {
			return nil, fmt.Errorf("%w: sample %d is %d", ErrBadLength, i, l)
		}
		if l > longest {
			longest = l
		}
	}

	h := &Histogram{counts: make([]int, longest), total: len(lengths)}
	for _, l := range lengths {
		h.counts[l-1]++
	}

	return h, nil
}

// Total is the number of samples.
func (h *Histogram) Total() int { return h.total }

// MaxHops is the longest sampled length.
func (h *Histogram) MaxHops() int { return len(h.counts) }

// Count returns the number of samples with exactly hops links, or 0 for
// hop counts outside [1, MaxHops].
func (h *Histogram) Count(hops int) int {
	if hops < 1 || hops > len(h.counts) {
		return 0
	}

	return h.counts[hops-1]
}

// Fraction returns Count(hops) / Total.
func (h *Histogram) Fraction(hops int) float64 {
	return float64(h.Count(hops)) / float64(h.total)
}

// WithinFraction returns the share of samples with at most hops links.
func (h *Histogram) WithinFraction(hops int) float64 {
	if hops > len(h.counts) {
		hops = len(h.counts)
	}
	n := 0
	for i := 0; i < hops; i++ {
		n += h.counts[i]
	}

	return float64(n) / float64(h.total)
}

// Buckets returns every bucket from 1 to MaxHops in ascending order.
func (h *Histogram) Buckets() []Bucket {
	out := make([]Bucket, len(h.counts))
	for i, c := range h.counts {
		out[i] = Bucket{Hops: i + 1, Count: c, Fraction: float64(c) / float64(h.total)}
	}

	return out
}

// Mean returns the average hop count.
func (h *Histogram) Mean() float64 {
	x, w := h.weighted()

	return stat.Mean(x, w)
}

// StdDev returns the sample standard deviation of the hop counts, or 0 when
// fewer than two samples exist.
func (h *Histogram) StdDev() float64 {
	if h.total < 2 {
		return 0
	}
	x, w := h.weighted()
	sd := stat.StdDev(x, w)
	if math.IsNaN(sd) {
		return 0
	}

	return sd
}

// Merge returns a new histogram holding the samples of both h and other.
func (h *Histogram) Merge(other *Histogram) *Histogram {
	if other == nil {
		other = &Histogram{}
	}
	n := len(h.counts)
	if len(other.counts) > n {
		n = len(other.counts)
	}
	out := &Histogram{counts: make([]int, n), total: h.total + other.total}
	copy(out.counts, h.counts)
	for i, c := range other.counts {
		out.counts[i] += c
	}

	return out
}

// String renders one "hops count fraction" line per bucket.
func (h *Histogram) String() string {
	var sb strings.Builder
	for _, b := range h.Buckets() {
		fmt.Fprintf(&sb, "%d\t%d\t%.4f\n", b.Hops, b.Count, b.Fraction)
	}

	return sb.String()
}

// weighted expands the buckets into gonum's (x, weights) form.
func (h *Histogram) weighted() ([]float64, []float64) {
	x := make([]float64, len(h.counts))
	w := make([]float64, len(h.counts))
	for i, c := range h.counts {
		x[i] = float64(i + 1)
		w[i] = float64(c)
	}

	return x, w
}
