// Package stats turns a chronological game log into the bucketed win-rate
// views behind the dashboard charts: 2-hour buckets, day-of-week buckets,
// a day-by-hour heatmap and conditional win rates after win/loss streaks.
//
// All functions are pure and total over well-formed input: empty or short
// logs produce empty output, never a panic. Draws count as half a win and
// every rate is rounded to one decimal.
package stats

import (
	"math"
	"time"
)

// Filter returns the entries inside the [from, to) window. A zero from
// keeps everything from the start of the log; a zero to keeps everything
// up to the end. The input slice is never mutated.
func Filter(log []GameLogEntry, from, to int64) []GameLogEntry {
	out := make([]GameLogEntry, 0, len(log))
	for _, e := range log {
		if e.Timestamp < from {
			continue
		}
		if to > 0 && e.Timestamp >= to {
			continue
		}
		out = append(out, e)
	}
	return out
}

type bucket struct {
	wins  int
	draws int
	total int
}

func (b *bucket) add(r Result) {
	b.total++
	switch r {
	case Win:
		b.wins++
	case Draw:
		b.draws++
	}
}

// rate computes the bucket win rate: draws weigh one half, rounded to one
// decimal. Callers must not invoke it on an empty bucket.
func (b bucket) rate() float64 {
	return math.Round((float64(b.wins)+0.5*float64(b.draws))/float64(b.total)*1000) / 10
}

func localTime(ts int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc)
}

func hourGroup(t time.Time) int {
	return t.Hour() / 2
}

// dayIndex remaps Go's Sunday=0 weekday numbering to Monday=0..Sunday=6.
func dayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

// Hourly aggregates the log into 2-hour buckets of the local day. Buckets
// without games are omitted; the result is sorted by hour group. A nil loc
// means time.Local.
func Hourly(log []GameLogEntry, loc *time.Location) []HourlyStat {
	var buckets [12]bucket
	for _, e := range log {
		buckets[hourGroup(localTime(e.Timestamp, loc))].add(e.Result)
	}

	var out []HourlyStat
	for g := 0; g < 12; g++ {
		b := buckets[g]
		if b.total == 0 {
			continue
		}
		out = append(out, HourlyStat{
			HourGroup:  g,
			StartHour:  g * 2,
			EndHour:    g*2 + 2,
			WinRate:    b.rate(),
			SampleSize: b.total,
		})
	}
	return out
}

// DayOfWeek aggregates the log per local day of the week, Monday first.
// Days without games are omitted. A nil loc means time.Local.
func DayOfWeek(log []GameLogEntry, loc *time.Location) []DayOfWeekStat {
	var buckets [7]bucket
	for _, e := range log {
		buckets[dayIndex(localTime(e.Timestamp, loc))].add(e.Result)
	}

	var out []DayOfWeekStat
	for d := 0; d < 7; d++ {
		b := buckets[d]
		if b.total == 0 {
			continue
		}
		out = append(out, DayOfWeekStat{
			Day:        d,
			WinRate:    b.rate(),
			SampleSize: b.total,
		})
	}
	return out
}

// Heatmap aggregates the log per (day, hour group) cell. Unlike Hourly and
// DayOfWeek it always emits all 84 cells in row-major order (day outer,
// hour group inner), with a nil rate for cells under HeatmapMinSample.
// A nil loc means time.Local.
func Heatmap(log []GameLogEntry, loc *time.Location) []HeatmapCell {
	var buckets [7][12]bucket
	for _, e := range log {
		t := localTime(e.Timestamp, loc)
		buckets[dayIndex(t)][hourGroup(t)].add(e.Result)
	}

	out := make([]HeatmapCell, 0, 7*12)
	for d := 0; d < 7; d++ {
		for g := 0; g < 12; g++ {
			b := buckets[d][g]
			cell := HeatmapCell{Day: d, HourGroup: g, SampleSize: b.total}
			if b.total >= HeatmapMinSample {
				r := b.rate()
				cell.WinRate = &r
			}
			out = append(out, cell)
		}
	}
	return out
}

// maxRun returns the longest consecutive run of the target result. Any
// other outcome, draws included, breaks the run.
func maxRun(log []GameLogEntry, target Result) int {
	longest, cur := 0, 0
	for _, e := range log {
		if e.Result == target {
			cur++
			if cur > longest {
				longest = cur
			}
		} else {
			cur = 0
		}
	}
	return longest
}

// Streaks computes, for every observed (type, exact length) streak, the win
// rate of the game that immediately follows it. A streak of length k ending
// at index i-1 qualifies only when it is exact: the game at i-k-1 (if any)
// is not of the streak type, so a length-3 run is not also counted inside a
// length-4 run's sub-window. The input must be sorted ascending by
// Timestamp; behavior on unsorted input is undefined.
func Streaks(log []GameLogEntry) []StreakStat {
	if len(log) < 2 {
		return nil
	}

	maxLen := maxRun(log, Win)
	if l := maxRun(log, Loss); l > maxLen {
		maxLen = l
	}
	if maxLen < 1 {
		maxLen = 1
	}

	types := []Result{Win, Loss}
	// buckets[t][k-1] accumulates outcomes after exact length-k streaks.
	buckets := make([][]bucket, len(types))
	for i := range buckets {
		buckets[i] = make([]bucket, maxLen)
	}

	for ti, typ := range types {
		for length := 1; length <= maxLen; length++ {
			for i := length; i < len(log); i++ {
				run := true
				for j := i - length; j < i; j++ {
					if log[j].Result != typ {
						run = false
						break
					}
				}
				if !run {
					continue
				}
				// Exactness: the run either starts at the beginning of the
				// log or is preceded by a different outcome.
				if i-length-1 >= 0 && log[i-length-1].Result == typ {
					continue
				}
				buckets[ti][length-1].add(log[i].Result)
			}
		}
	}

	var out []StreakStat
	for ti, typ := range types {
		name := StreakWin
		if typ == Loss {
			name = StreakLoss
		}
		for length := 1; length <= maxLen; length++ {
			b := buckets[ti][length-1]
			if b.total == 0 {
				continue
			}
			out = append(out, StreakStat{
				StreakType:   name,
				StreakLength: length,
				WinRate:      b.rate(),
				SampleSize:   b.total,
			})
		}
	}
	return out
}
