package chart

import (
	"time"
)

// Interval selects the bucket width for date bucketing.
type Interval string

const (
	Daily   Interval = "daily"
	Monthly Interval = "monthly"
)

// Sample is one raw (time, value) observation.
type Sample struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}

// Point is one aggregated chart point. Sum and Count aggregate every
// sample in the bucket; Last carries the latest sample's value, which is
// what valuation-style series plot.
type Point struct {
	Start time.Time `json:"start"`
	Key   string    `json:"key"`
	Sum   float64   `json:"sum"`
	Count int       `json:"count"`
	Last  float64   `json:"last"`
}

// TooltipPayload is the typed shape handed to chart tooltips.
type TooltipPayload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// BucketSeries groups samples into gap-free daily or monthly buckets
// between the first and last observation, in the given location (nil
// means time.Local). Empty buckets are emitted with Count 0 so chart
// X axes stay continuous. Samples need not be sorted.
func BucketSeries(samples []Sample, interval Interval, loc *time.Location) []Point {
	if len(samples) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	floor := dayFloor
	next := nextDay
	key := dayKey
	if interval == Monthly {
		floor = monthFloor
		next = nextMonth
		key = monthKey
	}

	first := floor(samples[0].At.In(loc))
	last := first
	type agg struct {
		sum    float64
		count  int
		last   float64
		lastAt time.Time
	}
	byStart := map[time.Time]*agg{}
	for _, s := range samples {
		start := floor(s.At.In(loc))
		if start.Before(first) {
			first = start
		}
		if start.After(last) {
			last = start
		}
		a := byStart[start]
		if a == nil {
			a = &agg{}
			byStart[start] = a
		}
		a.sum += s.Value
		a.count++
		if a.count == 1 || !s.At.Before(a.lastAt) {
			a.last = s.Value
			a.lastAt = s.At
		}
	}

	var out []Point
	for start := first; !start.After(last); start = next(start) {
		p := Point{Start: start, Key: key(start)}
		if a := byStart[start]; a != nil {
			p.Sum = a.sum
			p.Count = a.count
			p.Last = a.last
		}
		out = append(out, p)
	}
	return out
}

func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func nextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func monthFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func nextMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
