package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/flight-search/flight-route-query-service/internal/domain"
)

// PreferenceRepository stores user preferences as a jsonb document per user.
type PreferenceRepository struct {
	db Querier
}

// NewPreferenceRepository creates a PreferenceRepository over db.
func NewPreferenceRepository(db Querier) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreferences returns the stored preferences of userID, or ErrNotFound.
func (r *PreferenceRepository) GetPreferences(ctx context.Context, userID int64) (*domain.UserPreferences, error) {
	var (
		doc       []byte
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT preferences, updated_at FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(&doc, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("preferences of user %d: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getPreferences: %w", err)
	}

	prefs, err := decodePreferences(doc)
	if err != nil {
		return nil, fmt.Errorf("getPreferences decode: %w", err)
	}
	prefs.UserID = userID
	prefs.UpdatedAt = updatedAt
	return prefs, nil
}

// SavePreferences inserts or replaces the preferences of prefs.UserID.
func (r *PreferenceRepository) SavePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	doc, err := encodePreferences(prefs)
	if err != nil {
		return fmt.Errorf("savePreferences encode: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO user_preferences (user_id, preferences, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET preferences = EXCLUDED.preferences, updated_at = EXCLUDED.updated_at`,
		prefs.UserID, doc, prefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("savePreferences: %w", err)
	}
	return nil
}

// encodePreferences flattens the typed and ancillary fields into one document.
func encodePreferences(prefs domain.UserPreferences) ([]byte, error) {
	doc := make(map[string]interface{}, len(prefs.Ancillary)+len(domain.PreferenceKeys))
	for k, v := range prefs.Ancillary {
		if domain.IsPreferenceKey(k) {
			continue
		}
		doc[k] = v
	}
	for k, v := range prefs.Preference.ToRaw() {
		doc[k] = v
	}
	return json.Marshal(doc)
}

func decodePreferences(doc []byte) (*domain.UserPreferences, error) {
	raw := domain.RawPreferences{}
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	pref, err := domain.ParsePreference(raw)
	if err != nil {
		return nil, err
	}

	ancillary := make(map[string]interface{})
	for k, v := range raw {
		if !domain.IsPreferenceKey(k) {
			ancillary[k] = v
		}
	}
	return &domain.UserPreferences{Preference: pref, Ancillary: ancillary}, nil
}

var _ domain.PreferenceRepository = (*PreferenceRepository)(nil)
