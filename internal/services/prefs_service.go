package services

import (
	"context"
	"encoding/json"

	"github.com/vitorsp/perfboard/internal/errors"
	"github.com/vitorsp/perfboard/internal/layout"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/prefs"
)

// layoutKey is the preference key holding a dashboard's card order.
func layoutKey(dashboard string) string {
	return "layout." + dashboard
}

// PreferenceService exposes the per-profile preference store and the
// persisted dashboard layouts built on top of it.
type PreferenceService interface {
	Get(ctx context.Context, profileID int64, key string) (string, bool, error)
	Set(ctx context.Context, profileID int64, key, value string) error
	Remove(ctx context.Context, profileID int64, key string) error
	List(ctx context.Context, profileID int64) (map[string]string, error)

	// GetLayout returns the saved card order merged against the current
	// catalog, so renamed or added cards never disappear.
	GetLayout(ctx context.Context, profileID int64, dashboard string) ([]string, error)
	SaveLayout(ctx context.Context, profileID int64, dashboard string, ids []string) ([]string, error)
}

type preferenceService struct {
	store prefs.Store
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(store prefs.Store) PreferenceService {
	return &preferenceService{store: store}
}

func (s *preferenceService) Get(ctx context.Context, profileID int64, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.NewValidationError("key", "cannot be empty")
	}
	value, ok, err := s.store.Get(ctx, profileID, key)
	if err != nil {
		return "", false, errors.NewInternalError(err)
	}
	return value, ok, nil
}

func (s *preferenceService) Set(ctx context.Context, profileID int64, key, value string) error {
	log := logger.FromContext(ctx)
	log.Debug("setting preference: profile_id=%d, key=%s", profileID, key)

	if key == "" {
		return errors.NewValidationError("key", "cannot be empty")
	}
	if err := s.store.Set(ctx, profileID, key, value); err != nil {
		log.Error("failed to set preference: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *preferenceService) Remove(ctx context.Context, profileID int64, key string) error {
	log := logger.FromContext(ctx)
	log.Debug("removing preference: profile_id=%d, key=%s", profileID, key)

	if key == "" {
		return errors.NewValidationError("key", "cannot be empty")
	}
	if err := s.store.Remove(ctx, profileID, key); err != nil {
		log.Error("failed to remove preference: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *preferenceService) List(ctx context.Context, profileID int64) (map[string]string, error) {
	all, err := s.store.List(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return all, nil
}

func (s *preferenceService) GetLayout(ctx context.Context, profileID int64, dashboard string) ([]string, error) {
	log := logger.FromContext(ctx)

	catalog := layout.Catalog(dashboard)
	if catalog == nil {
		return nil, errors.NewValidationError("dashboard", "unknown dashboard "+dashboard)
	}

	raw, ok, err := s.store.Get(ctx, profileID, layoutKey(dashboard))
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if !ok {
		return catalog, nil
	}

	var saved []string
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Warn("discarding corrupt saved layout for %s: %v", dashboard, err)
		return catalog, nil
	}
	return layout.Merge(saved, catalog), nil
}

func (s *preferenceService) SaveLayout(ctx context.Context, profileID int64, dashboard string, ids []string) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("saving layout: profile_id=%d, dashboard=%s", profileID, dashboard)

	catalog := layout.Catalog(dashboard)
	if catalog == nil {
		return nil, errors.NewValidationError("dashboard", "unknown dashboard "+dashboard)
	}

	merged := layout.Merge(ids, catalog)
	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if err := s.store.Set(ctx, profileID, layoutKey(dashboard), string(raw)); err != nil {
		log.Error("failed to save layout: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return merged, nil
}
