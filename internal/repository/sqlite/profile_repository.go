package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, username, timezone, fide_id, fide_rating, onboarded, created_at, last_sync_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Timezone, &p.FIDEID, &p.FIDERating, &p.Onboarded, &p.CreatedAt, &p.LastSyncAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Get(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: id=%d", id)

	p, err := scanProfile(r.db.QueryRowContext(ctx, `
SELECT `+profileColumns+`
FROM profiles
WHERE id = ?
`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found: id=%d", id)
		} else {
			log.Error("failed to get profile: %v", err)
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: username=%s", username)

	p, err := scanProfile(r.db.QueryRowContext(ctx, `
SELECT `+profileColumns+`
FROM profiles
WHERE username = ? COLLATE NOCASE
`, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found: username=%s", username)
		} else {
			log.Error("failed to get profile: %v", err)
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("listing profiles")

	rows, err := r.db.QueryContext(ctx, `
SELECT `+profileColumns+`
FROM profiles
ORDER BY created_at ASC
`)
	if err != nil {
		log.Error("failed to list profiles: %v", err)
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			log.Error("failed to scan profile row: %v", err)
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	log.Debug("found %d profiles", len(profiles))
	return profiles, rows.Err()
}

func (r *profileRepository) Create(ctx context.Context, p models.Profile) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("creating profile: username=%s", p.Username)

	tz := p.Timezone
	if tz == "" {
		tz = "UTC"
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO profiles (username, timezone, fide_id, fide_rating, onboarded)
VALUES (?, ?, ?, ?, ?)
`, p.Username, tz, p.FIDEID, p.FIDERating, p.Onboarded)
	if err != nil {
		log.Error("failed to create profile: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get profile id: %v", err)
		return 0, err
	}
	log.Debug("profile created: id=%d", id)
	return id, nil
}

func (r *profileRepository) Update(ctx context.Context, p models.Profile) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("updating profile: id=%d", p.ID)

	_, err := r.db.ExecContext(ctx, `
UPDATE profiles
SET timezone = ?, fide_id = ?, fide_rating = ?, onboarded = ?
WHERE id = ?
`, p.Timezone, p.FIDEID, p.FIDERating, p.Onboarded, p.ID)
	if err != nil {
		log.Error("failed to update profile: %v", err)
	}
	return err
}

func (r *profileRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("deleting profile: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete profile: %v", err)
	}
	return err
}

func (r *profileRepository) TouchLastSync(ctx context.Context, id int64, at time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("touching last_sync_at: id=%d", id)

	_, err := r.db.ExecContext(ctx, `UPDATE profiles SET last_sync_at = ? WHERE id = ?`, at, id)
	if err != nil {
		log.Error("failed to touch last_sync_at: %v", err)
	}
	return err
}
