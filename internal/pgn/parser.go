package pgn

import (
	"regexp"
	"strings"
	"time"

	"github.com/corentings/chess/v2"
)

var headerRe = regexp.MustCompile(`\[(\w+)\s+"([^"]+)"\]`)

// ParseHeaders extracts PGN header tags into a map
func ParseHeaders(pgn string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(pgn, "\n") {
		if !strings.HasPrefix(line, "[") {
			continue
		}
		m := headerRe.FindStringSubmatch(line)
		if len(m) == 3 {
			out[m[1]] = m[2]
		}
	}
	return out
}

var gameIDRe = regexp.MustCompile(`.*/game/[^/]+/([0-9]+)`)

// ExtractGameID extracts the game ID from a chess.com game URL
func ExtractGameID(url string) string {
	m := gameIDRe.FindStringSubmatch(url)
	if len(m) == 2 {
		return m[1]
	}
	return url
}

// Summary is the subset of a PGN the dashboard stores per game.
type Summary struct {
	Plies   int
	EndedAt time.Time
}

// Summarize parses the PGN movetext for the ply count and resolves the end
// time from the UTCDate/UTCTime headers chess.com writes. A PGN that fails
// to parse yields zero plies; a missing or malformed end time yields a zero
// EndedAt, and the caller falls back to the archive's end_time field.
func Summarize(pgnText string) Summary {
	var s Summary

	if pgnOpt, err := chess.PGN(strings.NewReader(pgnText)); err == nil {
		game := chess.NewGame(pgnOpt)
		s.Plies = len(game.Moves())
	}

	headers := ParseHeaders(pgnText)
	if d, ok := headers["UTCDate"]; ok {
		clock := headers["UTCTime"]
		if clock == "" {
			clock = "00:00:00"
		}
		if t, err := time.ParseInLocation("2006.01.02 15:04:05", d+" "+clock, time.UTC); err == nil {
			s.EndedAt = t
		}
	}
	return s
}
