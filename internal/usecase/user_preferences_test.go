package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestSavePreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockPreferenceRepository(ctrl)

	var saved domain.UserPreferences
	repo.EXPECT().SavePreferences(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.UserPreferences) error {
			saved = p
			return nil
		},
	)

	uc := NewPreferencesUseCase(repo, &Config{Clock: timeutil.NewMockClock(fixedNow)})

	got, err := uc.SavePreferences(context.Background(), 7, map[string]interface{}{
		domain.PrefFlyingClass:    "first",
		domain.PrefLayoverMinutes: "",
		"hotel":                   "Hilton",
		"transportation":          "",
	})

	require.NoError(t, err)
	assert.Equal(t, saved, *got)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, fixedNow, got.UpdatedAt)
	assert.Equal(t, domain.CabinFirst, got.Preference.FlyingClass.OrElse(""))
	assert.False(t, got.Preference.LayoverMinutes.IsPresent())
	assert.Equal(t, map[string]interface{}{"hotel": "Hilton"}, got.Ancillary)
}

func TestSavePreferences_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		raw    map[string]interface{}
	}{
		{name: "zero user", userID: 0, raw: nil},
		{name: "bad class", userID: 1, raw: map[string]interface{}{domain.PrefFlyingClass: "steerage"}},
		{name: "negative layover", userID: 1, raw: map[string]interface{}{domain.PrefLayoverMinutes: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockPreferenceRepository(ctrl)

			_, err := NewPreferencesUseCase(repo, nil).SavePreferences(context.Background(), tt.userID, tt.raw)

			require.Error(t, err)
			assert.True(t, domain.IsInvalidRequest(err))
		})
	}
}

func TestSavePreferences_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().SavePreferences(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := NewPreferencesUseCase(repo, nil).SavePreferences(context.Background(), 3, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGetPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockPreferenceRepository(ctrl)

	stored := &domain.UserPreferences{
		UserID:     5,
		Preference: domain.Preference{DurationMinutesCeiling: domain.Some(240.0)},
	}
	repo.EXPECT().GetPreferences(gomock.Any(), int64(5)).Return(stored, nil)
	repo.EXPECT().GetPreferences(gomock.Any(), int64(6)).Return(nil, domain.ErrNotFound)

	uc := NewPreferencesUseCase(repo, nil)

	got, err := uc.GetPreferences(context.Background(), 5)
	require.NoError(t, err)
	assert.Same(t, stored, got)

	_, err = uc.GetPreferences(context.Background(), 6)
	assert.True(t, domain.IsNotFound(err))

	_, err = uc.GetPreferences(context.Background(), -1)
	assert.True(t, domain.IsInvalidRequest(err))
}
