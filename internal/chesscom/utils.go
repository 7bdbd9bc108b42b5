package chesscom

import "strings"

// DeriveSide determines which color the user played, the opponent, both
// ratings, and the normalized result from the user's perspective.
func DeriveSide(username string, mg MonthlyGame) (playedAs, opponent, result string, playerRating, opponentRating int) {
	if strings.EqualFold(mg.White.Username, username) {
		return "white", mg.Black.Username, NormalizeResult(mg.White.Result), mg.White.Rating, mg.Black.Rating
	}
	return "black", mg.White.Username, NormalizeResult(mg.Black.Result), mg.Black.Rating, mg.White.Rating
}

// NormalizeResult converts chess.com result strings to standardized values
func NormalizeResult(res string) string {
	res = strings.ToLower(res)
	switch res {
	case "win":
		return "win"
	case "stalemate", "agreed", "repetition", "timevsinsufficient", "insufficient", "fiftymove", "draw":
		return "draw"
	case "checkmated", "resigned", "timeout", "abandoned", "kingofthehill", "threecheck", "bughousepartnerlose":
		return "loss"
	default:
		return "loss"
	}
}
