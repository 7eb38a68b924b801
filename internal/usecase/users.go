package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// UserUseCase registers users.
type UserUseCase interface {
	// CreateUser stores user and returns it with the assigned ID. A duplicate
	// email returns a wrapped domain.ErrConflict.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
}

type userUseCase struct {
	repo  domain.UserRepository
	clock timeutil.Clock
}

// NewUserUseCase creates a UserUseCase.
func NewUserUseCase(repo domain.UserRepository, config *Config) UserUseCase {
	cfg := resolve(config)
	return &userUseCase{repo: repo, clock: cfg.Clock}
}

func (uc *userUseCase) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	normalizeUser(&user)
	now := uc.clock.Now().UTC()

	switch {
	case user.FullName == "":
		return nil, domain.NewValidationError("fullName", "fullName is required")
	case user.Email == "":
		return nil, domain.NewValidationError("email", "email is required")
	case user.BirthDate != nil && user.BirthDate.After(now):
		return nil, domain.NewValidationError("birthDate", "birthDate must not be in the future")
	}

	user.ID = 0
	user.CreatedAt = now
	id, err := uc.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return &user, nil
}

// normalizeUser trims every text field. Emails compare case-insensitively.
func normalizeUser(u *domain.User) {
	for _, s := range []*string{
		&u.FullName, &u.PhoneNumber, &u.Gender,
		&u.Address.FirstLine, &u.Address.LastLine, &u.Address.Postcode,
		&u.Billing.FirstLine, &u.Billing.LastLine, &u.Billing.Postcode,
	} {
		*s = strings.TrimSpace(*s)
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

var _ UserUseCase = (*userUseCase)(nil)
