package models

type SummaryStat struct {
	TotalGames    int     `json:"total_games"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
	CurrentRating int     `json:"current_rating"`
}
