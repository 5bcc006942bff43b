package domain

import (
	"fmt"
	"time"
)

// BenchSample is one seek/read/write round of a timing sweep.
type BenchSample struct {
	Index   int64
	Elapsed time.Duration
	Digits  int
}

type BenchReport struct {
	StartedAt time.Time
	MaxIndex  int64
	Capacity  int
	Samples   []BenchSample
}

func (r BenchReport) Total() time.Duration {
	var total time.Duration
	for _, s := range r.Samples {
		total += s.Elapsed
	}

	return total
}

func (r BenchReport) Mean() time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}

	return r.Total() / time.Duration(len(r.Samples))
}

// Slowest returns the sample with the largest elapsed time; ok is false for
// an empty report.
func (r BenchReport) Slowest() (BenchSample, bool) {
	if len(r.Samples) == 0 {
		return BenchSample{}, false
	}

	slowest := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s.Elapsed > slowest.Elapsed {
			slowest = s
		}
	}

	return slowest, true
}

// CompactNanos formats a duration as 950ns, 1.2kns or 3.4Mns.
func CompactNanos(d time.Duration) string {
	return compactNumber(d.Nanoseconds()) + "ns"
}

func compactNumber(v int64) string {
	if v < 1_000 {
		return fmt.Sprintf("%d", v)
	}

	if v < 1_000_000 {
		return fmt.Sprintf("%.1fk", float64(v)/1_000)
	}

	return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
}
