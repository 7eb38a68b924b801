package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// ItineraryUseCase saves flight legs to a user's itinerary.
type ItineraryUseCase interface {
	// AddItinerary returns a wrapped domain.ErrNotFound when legID is unknown.
	AddItinerary(ctx context.Context, userID int64, legID string) (*domain.Itinerary, error)
}

type itineraryUseCase struct {
	repo  domain.ItineraryRepository
	clock timeutil.Clock
	newID func() string
}

// NewItineraryUseCase creates an ItineraryUseCase.
func NewItineraryUseCase(repo domain.ItineraryRepository, config *Config) ItineraryUseCase {
	cfg := resolve(config)
	return &itineraryUseCase{repo: repo, clock: cfg.Clock, newID: uuid.NewString}
}

func (uc *itineraryUseCase) AddItinerary(ctx context.Context, userID int64, legID string) (*domain.Itinerary, error) {
	legID = strings.TrimSpace(legID)
	if userID <= 0 {
		return nil, domain.WrapInvalidRequest("user id must be positive, got %d", userID)
	}
	if legID == "" {
		return nil, domain.WrapInvalidRequest("leg id is required")
	}

	exists, err := uc.repo.LegExists(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("check leg %q: %w", legID, err)
	}
	if !exists {
		return nil, fmt.Errorf("leg %q: %w", legID, domain.ErrNotFound)
	}

	it := domain.Itinerary{
		ID:        uc.newID(),
		UserID:    userID,
		LegID:     legID,
		CreatedAt: uc.clock.Now().UTC(),
	}
	if err := uc.repo.AddItinerary(ctx, it); err != nil {
		return nil, fmt.Errorf("add itinerary: %w", err)
	}
	return &it, nil
}

var _ ItineraryUseCase = (*itineraryUseCase)(nil)
