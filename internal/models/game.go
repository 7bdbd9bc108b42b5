package models

import "time"

type Game struct {
	ID             int64     `json:"id"`
	ProfileID      int64     `json:"profile_id"`
	ChessComID     string    `json:"chess_com_id"`
	PGN            string    `json:"pgn"`
	TimeClass      string    `json:"time_class"`
	Result         string    `json:"result"` // win, draw, loss
	PlayedAs       string    `json:"played_as"`
	Opponent       string    `json:"opponent"`
	PlayerRating   int       `json:"player_rating"`
	OpponentRating int       `json:"opponent_rating"`
	Plies          int       `json:"plies"`
	PlayedAt       time.Time `json:"played_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type GameFilter struct {
	ProfileID int64
	TimeClass string
	Result    string
	PlayedAs  string
	Opponent  string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
	OrderBy   string
	OrderDir  string
}
