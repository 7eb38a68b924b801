package usecase

import (
	"context"
	"fmt"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// PreferencesUseCase reads and stores user preference records.
type PreferencesUseCase interface {
	// GetPreferences returns a wrapped domain.ErrNotFound when the user has none.
	GetPreferences(ctx context.Context, userID int64) (*domain.UserPreferences, error)

	// SavePreferences validates raw and replaces the stored record.
	// Keys the search does not understand are kept as ancillary values.
	SavePreferences(ctx context.Context, userID int64, raw map[string]interface{}) (*domain.UserPreferences, error)
}

type preferencesUseCase struct {
	repo  domain.PreferenceRepository
	clock timeutil.Clock
}

// NewPreferencesUseCase creates a PreferencesUseCase.
func NewPreferencesUseCase(repo domain.PreferenceRepository, config *Config) PreferencesUseCase {
	cfg := resolve(config)
	return &preferencesUseCase{repo: repo, clock: cfg.Clock}
}

func (uc *preferencesUseCase) GetPreferences(ctx context.Context, userID int64) (*domain.UserPreferences, error) {
	if userID <= 0 {
		return nil, domain.WrapInvalidRequest("user id must be positive, got %d", userID)
	}

	prefs, err := uc.repo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("preferences of user %d: %w", userID, err)
	}
	return prefs, nil
}

func (uc *preferencesUseCase) SavePreferences(ctx context.Context, userID int64, raw map[string]interface{}) (*domain.UserPreferences, error) {
	if userID <= 0 {
		return nil, domain.WrapInvalidRequest("user id must be positive, got %d", userID)
	}

	normalized := NormalizePreferences(raw)
	pref, err := domain.ParsePreference(normalized)
	if err != nil {
		return nil, err
	}

	var ancillary map[string]interface{}
	for k, v := range normalized {
		if domain.IsPreferenceKey(k) || domain.IsAbsent(v) {
			continue
		}
		if ancillary == nil {
			ancillary = make(map[string]interface{})
		}
		ancillary[k] = v
	}

	prefs := domain.UserPreferences{
		UserID:     userID,
		Preference: pref,
		Ancillary:  ancillary,
		UpdatedAt:  uc.clock.Now().UTC(),
	}
	if err := uc.repo.SavePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("save preferences of user %d: %w", userID, err)
	}
	return &prefs, nil
}

var _ PreferencesUseCase = (*preferencesUseCase)(nil)
