package stats

// Result is a single game outcome from the tracked player's perspective.
type Result string

const (
	Win  Result = "w"
	Loss Result = "l"
	Draw Result = "d"
)

// Streak types reported by Streaks.
const (
	StreakWin  = "win"
	StreakLoss = "loss"
)

// HeatmapMinSample is the minimum number of games a heatmap cell needs
// before its win rate is reported. Cells below the threshold keep their
// true sample size but report a nil rate so the UI doesn't chart noise.
const HeatmapMinSample = 20

// GameLogEntry is one finished game: end time as Unix seconds plus outcome.
// Hourly, DayOfWeek and Heatmap accept entries in any order; Streaks
// requires the slice sorted ascending by Timestamp.
type GameLogEntry struct {
	Timestamp int64  `json:"timestamp"`
	Result    Result `json:"result"`
}

// HourlyStat is the win rate for one 2-hour bucket of the day.
type HourlyStat struct {
	HourGroup  int     `json:"hour_group"` // 0..11
	StartHour  int     `json:"start_hour"`
	EndHour    int     `json:"end_hour"`
	WinRate    float64 `json:"win_rate"`
	SampleSize int     `json:"sample_size"`
}

// DayOfWeekStat is the win rate for one day of the week, Monday=0.
type DayOfWeekStat struct {
	Day        int     `json:"day"` // 0..6, Monday=0
	WinRate    float64 `json:"win_rate"`
	SampleSize int     `json:"sample_size"`
}

// HeatmapCell is one (day, hour group) cell. WinRate is nil when the cell
// has fewer than HeatmapMinSample games.
type HeatmapCell struct {
	Day        int      `json:"day"`        // 0..6, Monday=0
	HourGroup  int      `json:"hour_group"` // 0..11
	WinRate    *float64 `json:"win_rate"`
	SampleSize int      `json:"sample_size"`
}

// StreakStat is the win rate of the game immediately following an
// exact-length run of wins or losses.
type StreakStat struct {
	StreakType   string  `json:"streak_type"` // "win" or "loss"
	StreakLength int     `json:"streak_length"`
	WinRate      float64 `json:"win_rate"`
	SampleSize   int     `json:"sample_size"`
}
