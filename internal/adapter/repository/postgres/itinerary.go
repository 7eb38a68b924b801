package postgres

import (
	"context"
	"fmt"

	"github.com/flight-search/flight-route-query-service/internal/adapter/repository/postgres/query"
	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// ItineraryRepository stores itineraries.
type ItineraryRepository struct {
	db Querier
}

// NewItineraryRepository creates an ItineraryRepository over db.
func NewItineraryRepository(db Querier) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// LegExists reports whether a leg with legID is present.
func (r *ItineraryRepository) LegExists(ctx context.Context, legID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+query.LegTable+` WHERE `+query.ColLegID+` = $1)`,
		legID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("legExists: %w", err)
	}
	return exists, nil
}

// AddItinerary inserts itinerary.
func (r *ItineraryRepository) AddItinerary(ctx context.Context, itinerary domain.Itinerary) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO itineraries (id, user_id, leg_id, created_at) VALUES ($1, $2, $3, $4)`,
		itinerary.ID, itinerary.UserID, itinerary.LegID, itinerary.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("addItinerary: %w", err)
	}
	return nil
}

var _ domain.ItineraryRepository = (*ItineraryRepository)(nil)
