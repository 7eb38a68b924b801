package postgres

import (
	"context"
	"fmt"

	"github.com/flight-search/flight-route-query-service/internal/adapter/repository/postgres/query"
	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// LegStore reads flight legs from the flight_legs table.
type LegStore struct {
	db Querier
}

// NewLegStore creates a LegStore over db.
func NewLegStore(db Querier) *LegStore {
	return &LegStore{db: db}
}

// FindLegs runs the search query for criteria and projects every row.
// The rows handle is closed on every return path, which releases the pooled
// connection.
func (s *LegStore) FindLegs(ctx context.Context, criteria domain.SearchCriteria, carrierCode string) ([]domain.FlightLeg, error) {
	b, err := query.ForSearch(criteria, carrierCode)
	if err != nil {
		return nil, err
	}
	sql, args := b.Build()

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("findLegs query: %w", err)
	}
	defer rows.Close()

	legs := make([]domain.FlightLeg, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("findLegs values: %w", err)
		}
		leg, err := ProjectLeg(values)
		if err != nil {
			return nil, fmt.Errorf("findLegs project: %w", err)
		}
		legs = append(legs, leg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("findLegs rows: %w", err)
	}

	return legs, nil
}

var _ domain.LegStore = (*LegStore)(nil)
