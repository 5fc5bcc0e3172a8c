package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atlax/atlax/internal/models"
)

// CreateProfile inserts a new profile row.
func (s *SQLiteStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO profiles (id, username, avatar_url, currency) VALUES (?, ?, ?, ?)",
		profile.ID, profile.Username, nullable(profile.AvatarURL), profile.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by user ID.
func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile := &models.Profile{}
	var avatarURL sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, avatar_url, currency FROM profiles WHERE id = ?",
		userID,
	).Scan(&profile.ID, &profile.Username, &avatarURL, &profile.Currency)
	if err == sql.ErrNoRows {
		return nil, nil // not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile.AvatarURL = optional(avatarURL)
	return profile, nil
}

// UpdateProfile applies the non-nil fields of update and returns the result.
func (s *SQLiteStore) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error) {
	if update.Username != nil {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE profiles SET username = ? WHERE id = ?", *update.Username, userID,
		); err != nil {
			return nil, fmt.Errorf("failed to update username: %w", err)
		}
	}
	if update.AvatarURL != nil {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE profiles SET avatar_url = ? WHERE id = ?", *update.AvatarURL, userID,
		); err != nil {
			return nil, fmt.Errorf("failed to update avatar url: %w", err)
		}
	}
	return s.GetProfile(ctx, userID)
}
