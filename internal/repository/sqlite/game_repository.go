package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
	"github.com/vitorsp/perfboard/internal/stats"
)

type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new GameRepository implementation
func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func gameQuery(filter models.GameFilter) squirrel.SelectBuilder {
	query := sqlBuilder.Select(
		"id", "profile_id", "chess_com_id", "pgn", "time_class", "result",
		"played_as", "opponent", "player_rating", "opponent_rating", "plies",
		"played_at", "created_at",
	).From("games")

	if filter.ProfileID != 0 {
		query = query.Where(squirrel.Eq{"profile_id": filter.ProfileID})
	}
	if filter.TimeClass != "" {
		query = query.Where(squirrel.Eq{"time_class": filter.TimeClass})
	}
	if filter.Result != "" {
		query = query.Where(squirrel.Eq{"result": filter.Result})
	}
	if filter.PlayedAs != "" {
		query = query.Where(squirrel.Eq{"played_as": filter.PlayedAs})
	}
	if filter.Opponent != "" {
		query = query.Where(squirrel.Eq{"opponent": filter.Opponent})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"played_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"played_at": *filter.To})
	}
	return query
}

func (r *gameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("listing games with filter: profile_id=%d, time_class=%s, result=%s, opponent=%s",
		filter.ProfileID, filter.TimeClass, filter.Result, filter.Opponent)

	query := gameQuery(filter)

	// Safe ORDER BY with validation
	orderBy := "played_at"
	if filter.OrderBy == "played_at" || filter.OrderBy == "player_rating" {
		orderBy = filter.OrderBy
	}
	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, err
	}
	defer rows.Close()
	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.ProfileID, &g.ChessComID, &g.PGN, &g.TimeClass, &g.Result, &g.PlayedAs, &g.Opponent, &g.PlayerRating, &g.OpponentRating, &g.Plies, &g.PlayedAt, &g.CreatedAt); err != nil {
			log.Error("failed to scan game row: %v", err)
			return nil, err
		}
		games = append(games, g)
	}
	log.Debug("found %d games", len(games))
	return games, rows.Err()
}

func (r *gameRepository) Count(ctx context.Context, filter models.GameFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("counting games: profile_id=%d", filter.ProfileID)

	query := sqlBuilder.Select("COUNT(*)").From("games")
	if filter.ProfileID != 0 {
		query = query.Where(squirrel.Eq{"profile_id": filter.ProfileID})
	}
	if filter.TimeClass != "" {
		query = query.Where(squirrel.Eq{"time_class": filter.TimeClass})
	}
	if filter.Result != "" {
		query = query.Where(squirrel.Eq{"result": filter.Result})
	}
	if filter.PlayedAs != "" {
		query = query.Where(squirrel.Eq{"played_as": filter.PlayedAs})
	}
	if filter.Opponent != "" {
		query = query.Where(squirrel.Eq{"opponent": filter.Opponent})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"played_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"played_at": *filter.To})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		log.Error("failed to count games: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *gameRepository) InsertBatch(ctx context.Context, games []models.Game) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("batch inserting %d games", len(games))

	if len(games) == 0 {
		return 0, nil
	}

	inserted := 0
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO games (
    profile_id, chess_com_id, pgn, time_class, result, played_as,
    opponent, player_rating, opponent_rating, plies, played_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(chess_com_id) DO NOTHING
`)
		if err != nil {
			log.Error("failed to prepare batch insert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, g := range games {
			res, err := stmt.ExecContext(ctx, g.ProfileID, g.ChessComID, g.PGN, g.TimeClass, g.Result, g.PlayedAs, g.Opponent, g.PlayerRating, g.OpponentRating, g.Plies, g.PlayedAt)
			if err != nil {
				log.Error("failed to insert game chess_com_id=%s: %v", g.ChessComID, err)
				return err
			}
			if n, err := res.RowsAffected(); err == nil {
				inserted += int(n)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Debug("batch insert completed, %d new games inserted", inserted)
	return inserted, nil
}

func (r *gameRepository) GameLog(ctx context.Context, profileID int64, from, to *time.Time) ([]stats.GameLogEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("loading game log: profile_id=%d", profileID)

	query := sqlBuilder.Select("played_at", "result").
		From("games").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("played_at ASC")
	if from != nil {
		query = query.Where(squirrel.GtOrEq{"played_at": *from})
	}
	if to != nil {
		query = query.Where(squirrel.Lt{"played_at": *to})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to load game log: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []stats.GameLogEntry
	for rows.Next() {
		var playedAt time.Time
		var result string
		if err := rows.Scan(&playedAt, &result); err != nil {
			log.Error("failed to scan game log row: %v", err)
			return nil, err
		}
		entries = append(entries, stats.GameLogEntry{
			Timestamp: playedAt.Unix(),
			Result:    resultCode(result),
		})
	}
	log.Debug("loaded %d game log entries", len(entries))
	return entries, rows.Err()
}

// resultCode maps the stored result to the compact code the stats
// aggregations use.
func resultCode(result string) stats.Result {
	switch result {
	case "win":
		return stats.Win
	case "draw":
		return stats.Draw
	default:
		return stats.Loss
	}
}

func (r *gameRepository) Summary(ctx context.Context, profileID int64) (*models.SummaryStat, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("loading summary stats: profile_id=%d", profileID)

	var s models.SummaryStat
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN result = 'win' THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN result = 'draw' THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN result = 'loss' THEN 1 ELSE 0 END), 0),
       COALESCE(ROUND(100.0 * (SUM(CASE WHEN result = 'win' THEN 1.0 ELSE 0 END) + 0.5 * SUM(CASE WHEN result = 'draw' THEN 1.0 ELSE 0 END)) / COUNT(*), 1), 0),
       COALESCE((SELECT player_rating FROM games WHERE profile_id = ? ORDER BY played_at DESC LIMIT 1), 0)
FROM games
WHERE profile_id = ?
`, profileID, profileID).Scan(&s.TotalGames, &s.Wins, &s.Draws, &s.Losses, &s.WinRate, &s.CurrentRating)
	if err != nil {
		log.Error("failed to load summary stats: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *gameRepository) ExistingChessComIDs(ctx context.Context, profileID int64) (map[string]bool, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("loading existing chess_com_ids for profile_id=%d", profileID)

	rows, err := r.db.QueryContext(ctx, `SELECT chess_com_id FROM games WHERE profile_id = ?`, profileID)
	if err != nil {
		log.Error("failed to list chess_com_ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Error("failed to scan chess_com_id: %v", err)
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}
