package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/prefs"
)

type preferenceStore struct {
	db *sql.DB
}

// NewPreferenceStore creates the sqlite-backed prefs.Store.
func NewPreferenceStore(db *sql.DB) prefs.Store {
	return &preferenceStore{db: db}
}

func (s *preferenceStore) Get(ctx context.Context, profileID int64, key string) (string, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("prefs_repo")

	var value string
	err := s.db.QueryRowContext(ctx, `
SELECT value FROM preferences WHERE profile_id = ? AND key = ?
`, profileID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		log.Error("failed to get preference %s: %v", key, err)
		return "", false, err
	}
	return value, true, nil
}

func (s *preferenceStore) Set(ctx context.Context, profileID int64, key, value string) error {
	log := logger.FromContext(ctx).WithPrefix("prefs_repo")
	log.Debug("setting preference: profile_id=%d, key=%s", profileID, key)

	_, err := s.db.ExecContext(ctx, `
INSERT INTO preferences (profile_id, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(profile_id, key) DO UPDATE SET
    value = excluded.value,
    updated_at = CURRENT_TIMESTAMP
`, profileID, key, value)
	if err != nil {
		log.Error("failed to set preference %s: %v", key, err)
	}
	return err
}

func (s *preferenceStore) Remove(ctx context.Context, profileID int64, key string) error {
	log := logger.FromContext(ctx).WithPrefix("prefs_repo")
	log.Debug("removing preference: profile_id=%d, key=%s", profileID, key)

	_, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE profile_id = ? AND key = ?`, profileID, key)
	if err != nil {
		log.Error("failed to remove preference %s: %v", key, err)
	}
	return err
}

func (s *preferenceStore) List(ctx context.Context, profileID int64) (map[string]string, error) {
	log := logger.FromContext(ctx).WithPrefix("prefs_repo")

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences WHERE profile_id = ?`, profileID)
	if err != nil {
		log.Error("failed to list preferences: %v", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			log.Error("failed to scan preference row: %v", err)
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}
