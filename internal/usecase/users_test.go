package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

func dateOf(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name        string
		input       domain.User
		setupMock   func(m *domain.MockUserRepository)
		wantErrType func(error) bool
		wantField   string
	}{
		{
			name: "created",
			input: domain.User{
				ID:          55,
				FullName:    "  Test User ",
				PhoneNumber: "1234567890",
				Email:       " Test@Example.com",
				Address:     domain.Address{FirstLine: "101 Test St ", LastLine: "Suite 10", Postcode: "98765"},
				Billing:     domain.Address{FirstLine: "101 Test St", LastLine: "Suite 10", Postcode: " 98765"},
				BirthDate:   dateOf(1990, 1, 1),
				Gender:      "M",
			},
			setupMock: func(m *domain.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), domain.User{
					FullName:    "Test User",
					PhoneNumber: "1234567890",
					Email:       "test@example.com",
					Address:     domain.Address{FirstLine: "101 Test St", LastLine: "Suite 10", Postcode: "98765"},
					Billing:     domain.Address{FirstLine: "101 Test St", LastLine: "Suite 10", Postcode: "98765"},
					BirthDate:   dateOf(1990, 1, 1),
					Gender:      "M",
					CreatedAt:   fixedNow,
				}).Return(int64(100), nil)
			},
		},
		{
			name:        "blank name",
			input:       domain.User{FullName: "  ", Email: "a@b.c"},
			setupMock:   func(m *domain.MockUserRepository) {},
			wantErrType: domain.IsInvalidRequest,
			wantField:   "fullName",
		},
		{
			name:        "missing email",
			input:       domain.User{FullName: "A"},
			setupMock:   func(m *domain.MockUserRepository) {},
			wantErrType: domain.IsInvalidRequest,
			wantField:   "email",
		},
		{
			name:        "born tomorrow",
			input:       domain.User{FullName: "A", Email: "a@b.c", BirthDate: dateOf(2024, 3, 2)},
			setupMock:   func(m *domain.MockUserRepository) {},
			wantErrType: domain.IsInvalidRequest,
			wantField:   "birthDate",
		},
		{
			name:  "duplicate email",
			input: domain.User{FullName: "A", Email: "a@b.c"},
			setupMock: func(m *domain.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("createUser: %w", domain.ErrConflict))
			},
			wantErrType: domain.IsConflict,
		},
		{
			name:  "store failure",
			input: domain.User{FullName: "A", Email: "a@b.c"},
			setupMock: func(m *domain.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("conn reset"))
			},
			wantErrType: func(err error) bool { return !domain.IsConflict(err) && !domain.IsInvalidRequest(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockUserRepository(ctrl)
			tt.setupMock(repo)

			uc := NewUserUseCase(repo, &Config{Clock: timeutil.NewMockClock(fixedNow)})
			got, err := uc.CreateUser(context.Background(), tt.input)

			if tt.wantErrType != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErrType(err), err.Error())
				assert.Nil(t, got)
				if tt.wantField != "" {
					var fieldErr *domain.ValidationError
					require.ErrorAs(t, err, &fieldErr)
					assert.Equal(t, tt.wantField, fieldErr.Field)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), got.ID)
			assert.Equal(t, "test@example.com", got.Email)
			assert.Equal(t, fixedNow, got.CreatedAt)
		})
	}
}

func TestCreateUser_StampsCurrentTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockUserRepository(ctrl)
	clock := timeutil.NewMockClock(fixedNow)

	var stamps []time.Time
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u domain.User) (int64, error) {
			stamps = append(stamps, u.CreatedAt)
			return int64(len(stamps)), nil
		}).Times(2)

	uc := NewUserUseCase(repo, &Config{Clock: clock})
	first, err := uc.CreateUser(context.Background(), domain.User{FullName: "A", Email: "a@b.c"})
	require.NoError(t, err)
	clock.Advance(90 * time.Second)
	second, err := uc.CreateUser(context.Background(), domain.User{FullName: "B", Email: "b@b.c"})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{fixedNow, fixedNow.Add(90 * time.Second)}, stamps)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}
