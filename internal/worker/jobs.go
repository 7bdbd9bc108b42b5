package worker

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vitorsp/perfboard/internal/chesscom"
	"github.com/vitorsp/perfboard/internal/events"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/pgn"
	"github.com/vitorsp/perfboard/internal/repository"
)

// ImportGamesJob fetches the profile's chess.com archives and inserts any
// games not yet stored. Progress is broadcast on the events hub.
type ImportGamesJob struct {
	ID            string
	GameRepo      repository.GameRepository
	ProfileRepo   repository.ProfileRepository
	ChessClient   chesscom.ClientInterface
	Events        events.Publisher
	Profile       models.Profile
	ArchiveLimit  int
	MaxConcurrent int
}

func (j *ImportGamesJob) Name() string { return "import_games" }

func (j *ImportGamesJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"username":   j.Profile.Username,
		"profile_id": j.Profile.ID,
		"import_id":  j.ID,
	})
	log.Info("starting background import")
	j.publish(events.TypeImportStarted, map[string]any{})

	inserted, err := j.run(ctx, log)
	if err != nil {
		j.publish(events.TypeImportFailed, map[string]any{"error": err.Error()})
		return err
	}
	j.publish(events.TypeImportFinished, map[string]any{"imported": inserted})
	return nil
}

func (j *ImportGamesJob) publish(eventType string, data map[string]any) {
	if j.Events == nil {
		return
	}
	data["import_id"] = j.ID
	data["profile_id"] = j.Profile.ID
	j.Events.Publish(events.Event{Type: eventType, Data: data})
}

func (j *ImportGamesJob) run(ctx context.Context, log *logger.Logger) (int, error) {
	archives, err := j.ChessClient.FetchArchives(ctx, j.Profile.Username)
	if err != nil {
		log.Error("failed to fetch archives: %v", err)
		return 0, err
	}

	if j.Profile.LastSyncAt != nil {
		archives = filterArchivesByDate(archives, *j.Profile.LastSyncAt)
		log.Info("filtered archives to %d based on last_sync_at", len(archives))
	}

	// ArchiveLimit of 0 means fetch all archives
	if j.ArchiveLimit > 0 && len(archives) > j.ArchiveLimit {
		archives = archives[len(archives)-j.ArchiveLimit:]
		log.Debug("limiting to last %d archives", j.ArchiveLimit)
	}
	log.Info("fetching %d archives in parallel", len(archives))

	maxConc := j.MaxConcurrent
	if maxConc <= 0 {
		maxConc = 10
	}

	type archiveResult struct {
		games []chesscom.MonthlyGame
		err   error
	}

	results := make(chan archiveResult, len(archives))
	sem := make(chan struct{}, maxConc)

	var wg sync.WaitGroup
	for _, url := range archives {
		wg.Add(1)
		go func(archiveURL string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			monthly, err := j.ChessClient.FetchMonthly(ctx, archiveURL)
			select {
			case results <- archiveResult{games: monthly, err: err}:
			case <-ctx.Done():
				return
			}
		}(url)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	existingIDs, err := j.GameRepo.ExistingChessComIDs(ctx, j.Profile.ID)
	if err != nil {
		log.Warn("failed to load existing game ids: %v", err)
		existingIDs = map[string]bool{}
	}

	var monthlyGames []chesscom.MonthlyGame
	for res := range results {
		if ctx.Err() != nil {
			log.Warn("import cancelled: %v", ctx.Err())
			return 0, ctx.Err()
		}
		if res.err != nil {
			log.Error("failed to fetch monthly games: %v", res.err)
			continue
		}
		monthlyGames = append(monthlyGames, res.games...)
	}

	if len(monthlyGames) == 0 {
		log.Info("no monthly games fetched")
		return 0, nil
	}

	var newGames []models.Game
	for _, mg := range monthlyGames {
		gameID := pgn.ExtractGameID(mg.URL)
		if existingIDs[gameID] {
			continue
		}
		existingIDs[gameID] = true // avoid duplicates in batch

		playedAs, opponent, result, playerRating, opponentRating := chesscom.DeriveSide(j.Profile.Username, mg)

		// PGN headers carry more precise ratings than the archive payload
		// for some older games.
		headers := pgn.ParseHeaders(mg.PGN)
		if playedAs == "white" {
			if r, err := strconv.Atoi(headers["WhiteElo"]); err == nil && r > 0 {
				playerRating = r
			}
			if r, err := strconv.Atoi(headers["BlackElo"]); err == nil && r > 0 {
				opponentRating = r
			}
		} else {
			if r, err := strconv.Atoi(headers["BlackElo"]); err == nil && r > 0 {
				playerRating = r
			}
			if r, err := strconv.Atoi(headers["WhiteElo"]); err == nil && r > 0 {
				opponentRating = r
			}
		}

		summary := pgn.Summarize(mg.PGN)
		playedAt := summary.EndedAt
		if playedAt.IsZero() {
			playedAt = time.Unix(mg.EndTime, 0).UTC()
		}

		newGames = append(newGames, models.Game{
			ProfileID:      j.Profile.ID,
			ChessComID:     gameID,
			PGN:            mg.PGN,
			TimeClass:      mg.TimeClass,
			Result:         result,
			PlayedAs:       playedAs,
			Opponent:       opponent,
			PlayerRating:   playerRating,
			OpponentRating: opponentRating,
			Plies:          summary.Plies,
			PlayedAt:       playedAt,
		})
	}

	inserted, err := j.GameRepo.InsertBatch(ctx, newGames)
	if err != nil {
		log.Error("failed to batch insert games: %v", err)
		return 0, err
	}
	log.Info("imported %d new games", inserted)

	if err := j.ProfileRepo.TouchLastSync(ctx, j.Profile.ID, time.Now().UTC()); err != nil {
		log.Warn("failed to update profile sync time: %v", err)
	}
	return inserted, nil
}

// filterArchivesByDate keeps archives from the given month/year onwards.
// Archive URLs look like: https://api.chess.com/pub/player/{username}/games/YYYY/MM
func filterArchivesByDate(archives []string, since time.Time) []string {
	if since.IsZero() {
		return archives
	}
	sinceMonth := time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, time.UTC)

	var filtered []string
	for _, url := range archives {
		parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
		if len(parts) < 2 {
			continue
		}
		year, err1 := strconv.Atoi(parts[len(parts)-2])
		month, err2 := strconv.Atoi(parts[len(parts)-1])
		if err1 != nil || err2 != nil {
			continue
		}
		archiveMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		if archiveMonth.Before(sinceMonth) {
			continue
		}
		filtered = append(filtered, url)
	}
	return filtered
}
