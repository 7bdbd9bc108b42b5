package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/vitorsp/perfboard/internal/errors"
	"github.com/vitorsp/perfboard/internal/fide"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/models"
	"github.com/vitorsp/perfboard/internal/repository"
)

// ProfileService handles profile and onboarding business logic
type ProfileService interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	GetProfile(ctx context.Context, id int64) (*models.Profile, error)
	CreateProfile(ctx context.Context, username, timezone string) (*models.Profile, error)
	UpdateTimezone(ctx context.Context, id int64, timezone string) (*models.Profile, error)
	LinkFIDE(ctx context.Context, id int64, fideID string) (*models.Profile, error)
	CompleteOnboarding(ctx context.Context, id int64) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	fideClient  fide.ClientInterface
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, fideClient fide.ClientInterface) ProfileService {
	return &profileService{profileRepo: profileRepo, fideClient: fideClient}
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing profiles")

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		log.Error("failed to list profiles: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return profiles, nil
}

func (s *profileService) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting profile: id=%d", id)

	profile, err := s.profileRepo.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("profile", id)
		}
		log.Error("failed to get profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return profile, nil
}

func (s *profileService) CreateProfile(ctx context.Context, username, timezone string) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating profile: username=%s, timezone=%s", username, timezone)

	if username == "" {
		return nil, errors.NewValidationError("username", "cannot be empty")
	}
	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return nil, errors.NewValidationError("timezone", "unknown IANA timezone")
		}
	}

	if existing, err := s.profileRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, errors.NewConflictError("profile already exists for username " + existing.Username)
	}

	id, err := s.profileRepo.Create(ctx, models.Profile{Username: username, Timezone: timezone})
	if err != nil {
		log.Error("failed to create profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.GetProfile(ctx, id)
}

func (s *profileService) UpdateTimezone(ctx context.Context, id int64, timezone string) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating timezone: id=%d, timezone=%s", id, timezone)

	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, errors.NewValidationError("timezone", "unknown IANA timezone")
	}

	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.Timezone = timezone
	if err := s.profileRepo.Update(ctx, *profile); err != nil {
		log.Error("failed to update profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return profile, nil
}

func (s *profileService) LinkFIDE(ctx context.Context, id int64, fideID string) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("linking FIDE id: id=%d, fide_id=%s", id, fideID)

	if fideID == "" {
		return nil, errors.NewValidationError("fide_id", "cannot be empty")
	}

	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	rating, err := s.fideClient.FetchRating(ctx, fideID)
	if err != nil {
		log.Error("failed to fetch FIDE rating: %v", err)
		return nil, errors.NewBadRequestError("could not resolve FIDE ID " + fideID)
	}

	profile.FIDEID = rating.FIDEID
	profile.FIDERating = rating.Standard
	if err := s.profileRepo.Update(ctx, *profile); err != nil {
		log.Error("failed to update profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("linked FIDE id %s (rating %d) to profile %d", fideID, rating.Standard, id)
	return profile, nil
}

func (s *profileService) CompleteOnboarding(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("completing onboarding: id=%d", id)

	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.Onboarded = true
	if err := s.profileRepo.Update(ctx, *profile); err != nil {
		log.Error("failed to update profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting profile: id=%d", id)

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		log.Error("failed to delete profile: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
