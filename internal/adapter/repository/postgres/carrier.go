package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// CarrierRepository resolves carrier codes from the airline table.
type CarrierRepository struct {
	db Querier
}

// NewCarrierRepository creates a CarrierRepository over db.
func NewCarrierRepository(db Querier) *CarrierRepository {
	return &CarrierRepository{db: db}
}

// ResolveCarrierCode looks up the code of the airline named name,
// ignoring case. A missing airline is reported with found == false.
func (r *CarrierRepository) ResolveCarrierCode(ctx context.Context, name string) (string, bool, error) {
	var code string
	err := r.db.QueryRow(ctx,
		`SELECT iata FROM airline
		 WHERE LOWER(airlinename) = LOWER($1) AND iata IS NOT NULL
		 ORDER BY airlineid
		 LIMIT 1`,
		strings.TrimSpace(name),
	).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolveCarrierCode: %w", err)
	}
	return code, true, nil
}

var _ domain.CarrierResolver = (*CarrierRepository)(nil)
