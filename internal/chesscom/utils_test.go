package chesscom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitorsp/perfboard/internal/chesscom"
)

func TestNormalizeResult(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"win", "win"},
		{"WIN", "win"},
		{"stalemate", "draw"},
		{"agreed", "draw"},
		{"repetition", "draw"},
		{"timevsinsufficient", "draw"},
		{"checkmated", "loss"},
		{"resigned", "loss"},
		{"timeout", "loss"},
		{"something-new", "loss"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, chesscom.NormalizeResult(tt.in))
		})
	}
}

func TestDeriveSide(t *testing.T) {
	mg := chesscom.MonthlyGame{
		White: chesscom.Player{Username: "Alice", Rating: 1500, Result: "win"},
		Black: chesscom.Player{Username: "Bob", Rating: 1480, Result: "checkmated"},
	}

	playedAs, opponent, result, rating, oppRating := chesscom.DeriveSide("alice", mg)
	assert.Equal(t, "white", playedAs)
	assert.Equal(t, "Bob", opponent)
	assert.Equal(t, "win", result)
	assert.Equal(t, 1500, rating)
	assert.Equal(t, 1480, oppRating)

	playedAs, opponent, result, rating, oppRating = chesscom.DeriveSide("bob", mg)
	assert.Equal(t, "black", playedAs)
	assert.Equal(t, "Alice", opponent)
	assert.Equal(t, "loss", result)
	assert.Equal(t, 1480, rating)
	assert.Equal(t, 1500, oppRating)
}
