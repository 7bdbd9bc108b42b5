package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
)

type goalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository implementation
func NewGoalRepository(db *sql.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Get(ctx context.Context, id int64) (*models.Goal, error) {
	log := logger.FromContext(ctx).WithPrefix("goal_repo")
	log.Debug("getting goal: id=%d", id)

	var g models.Goal
	err := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, metric, target, deadline, created_at
FROM goals
WHERE id = ?
`, id).Scan(&g.ID, &g.ProfileID, &g.Metric, &g.Target, &g.Deadline, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("goal not found: id=%d", id)
		} else {
			log.Error("failed to get goal: %v", err)
		}
		return nil, err
	}
	return &g, nil
}

func (r *goalRepository) List(ctx context.Context, profileID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx).WithPrefix("goal_repo")
	log.Debug("listing goals: profile_id=%d", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, profile_id, metric, target, deadline, created_at
FROM goals
WHERE profile_id = ?
ORDER BY created_at ASC
`, profileID)
	if err != nil {
		log.Error("failed to list goals: %v", err)
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.ProfileID, &g.Metric, &g.Target, &g.Deadline, &g.CreatedAt); err != nil {
			log.Error("failed to scan goal row: %v", err)
			return nil, err
		}
		goals = append(goals, g)
	}
	log.Debug("found %d goals", len(goals))
	return goals, rows.Err()
}

func (r *goalRepository) Create(ctx context.Context, g models.Goal) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("goal_repo")
	log.Debug("creating goal: profile_id=%d, metric=%s", g.ProfileID, g.Metric)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO goals (profile_id, metric, target, deadline)
VALUES (?, ?, ?, ?)
`, g.ProfileID, g.Metric, g.Target, g.Deadline)
	if err != nil {
		log.Error("failed to create goal: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get goal id: %v", err)
		return 0, err
	}
	log.Debug("goal created: id=%d", id)
	return id, nil
}

func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("goal_repo")
	log.Debug("deleting goal: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete goal: %v", err)
	}
	return err
}
