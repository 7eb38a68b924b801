package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarrierRepository_ResolveCarrierCode(t *testing.T) {
	tests := []struct {
		name      string
		row       fakeRow
		wantCode  string
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "known carrier",
			row:       fakeRow{values: []any{"DL"}},
			wantCode:  "DL",
			wantFound: true,
		},
		{
			name: "unknown carrier",
			row:  fakeRow{err: pgx.ErrNoRows},
		},
		{
			name:    "database failure",
			row:     fakeRow{err: errors.New("timeout")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeQuerier{row: tt.row}

			code, found, err := NewCarrierRepository(db).ResolveCarrierCode(context.Background(), "  Delta Air Lines ")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "resolveCarrierCode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, []any{"Delta Air Lines"}, db.lastArgs)
			assert.Contains(t, db.lastSQL, "LOWER(airlinename) = LOWER($1)")
		})
	}
}
