package models

import "time"

// Goal metrics
const (
	GoalMetricWinRate     = "win_rate"
	GoalMetricRating      = "rating"
	GoalMetricGamesPlayed = "games_played"
)

type Goal struct {
	ID        int64      `json:"id"`
	ProfileID int64      `json:"profile_id"`
	Metric    string     `json:"metric"`
	Target    float64    `json:"target"`
	Deadline  *time.Time `json:"deadline"`
	CreatedAt time.Time  `json:"created_at"`
}

// GoalProgress pairs a goal with its current value at read time.
type GoalProgress struct {
	Goal     Goal    `json:"goal"`
	Current  float64 `json:"current"`
	Percent  float64 `json:"percent"`
	Achieved bool    `json:"achieved"`
}
