package stats

import (
	"errors"

	"tracestat/internal/event"
)

var ErrEmptyResult = errors.New("stats: no events left after filtering, nothing to aggregate")

// Summary is the aggregate over the filtered event set. Built once,
// never mutated.
type Summary struct {
	SampleSize      int
	MinCPU          int
	MaxCPU          int
	MinDuration     int
	MaxDuration     int
	AverageCPU      float64
	AverageDuration float64
	AverageReads    float64
	AverageWrites   float64
}

// Summarize reduces events in a single pass. Aggregation over an empty
// set is undefined and reported as an error.
func Summarize(events []event.Event) (Summary, error) {
	if len(events) == 0 {
		return Summary{}, ErrEmptyResult
	}

	s := Summary{
		SampleSize:  len(events),
		MinCPU:      events[0].CPU,
		MaxCPU:      events[0].CPU,
		MinDuration: events[0].Duration,
		MaxDuration: events[0].Duration,
	}
	var sumCPU, sumDuration, sumReads, sumWrites int64
	for _, e := range events {
		if e.CPU < s.MinCPU {
			s.MinCPU = e.CPU
		}
		if e.CPU > s.MaxCPU {
			s.MaxCPU = e.CPU
		}
		if e.Duration < s.MinDuration {
			s.MinDuration = e.Duration
		}
		if e.Duration > s.MaxDuration {
			s.MaxDuration = e.Duration
		}
		sumCPU += int64(e.CPU)
		sumDuration += int64(e.Duration)
		sumReads += int64(e.Reads)
		sumWrites += int64(e.Writes)
	}

	n := float64(len(events))
	s.AverageCPU = float64(sumCPU) / n
	s.AverageDuration = float64(sumDuration) / n
	s.AverageReads = float64(sumReads) / n
	s.AverageWrites = float64(sumWrites) / n
	return s, nil
}
