package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// uniqueViolation is the SQLSTATE of a duplicate key.
const uniqueViolation = "23505"

const insertUserSQL = `INSERT INTO users (
	full_name, phone_number, email,
	address_first_line, address_last_line, address_postcode,
	billing_first_line, billing_last_line, billing_postcode,
	birth_date, gender, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING user_id`

// UserRepository stores users.
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a UserRepository over db.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts user and returns its generated user_id. Empty optional
// fields are stored as NULL. A duplicate email is reported as domain.ErrConflict.
func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertUserSQL,
		user.FullName, nullable(user.PhoneNumber), user.Email,
		nullable(user.Address.FirstLine), nullable(user.Address.LastLine), nullable(user.Address.Postcode),
		nullable(user.Billing.FirstLine), nullable(user.Billing.LastLine), nullable(user.Billing.Postcode),
		user.BirthDate, nullable(user.Gender), user.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("createUser: %w", domain.ErrConflict)
		}
		return 0, fmt.Errorf("createUser: %w", err)
	}
	return id, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ domain.UserRepository = (*UserRepository)(nil)
