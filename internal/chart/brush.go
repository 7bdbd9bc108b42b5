package chart

// BrushWindow maps a fractional brush selection onto a half-open index
// range [start, end) over an n-point series. Fractions are clamped to
// [0, 1] and reordered when inverted; the result always selects at least
// one point of a non-empty series.
func BrushWindow(n int, startFrac, endFrac float64) (start, end int) {
	if n <= 0 {
		return 0, 0
	}
	startFrac = clamp01(startFrac)
	endFrac = clamp01(endFrac)
	if startFrac > endFrac {
		startFrac, endFrac = endFrac, startFrac
	}

	start = int(startFrac * float64(n))
	end = int(endFrac*float64(n)) + 1
	if start >= n {
		start = n - 1
	}
	if end > n {
		end = n
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
