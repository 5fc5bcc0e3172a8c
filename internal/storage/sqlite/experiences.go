package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atlax/atlax/internal/models"
)

const experienceColumns = "id, title, creator, creator_avatar_url, thumbnail_url, player_count, genre, description"

// ListExperiences returns the experience catalog, busiest first.
func (s *SQLiteStore) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+experienceColumns+" FROM experiences ORDER BY player_count DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}
	defer rows.Close()

	experiences := []models.Experience{}
	for rows.Next() {
		var e models.Experience
		var genre string
		if err := rows.Scan(&e.ID, &e.Title, &e.Creator, &e.CreatorAvatarURL, &e.ThumbnailURL, &e.PlayerCount, &genre, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		e.Genre = models.ExperienceGenre(genre)
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate experiences: %w", err)
	}
	return experiences, nil
}

// GetExperience retrieves an experience by ID.
func (s *SQLiteStore) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	e := &models.Experience{}
	var genre string
	err := s.db.QueryRowContext(ctx,
		"SELECT "+experienceColumns+" FROM experiences WHERE id = ?", id,
	).Scan(&e.ID, &e.Title, &e.Creator, &e.CreatorAvatarURL, &e.ThumbnailURL, &e.PlayerCount, &genre, &e.Description)
	if err == sql.ErrNoRows {
		return nil, nil // not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	e.Genre = models.ExperienceGenre(genre)
	return e, nil
}

// ListReviews returns an experience's reviews, newest first, with the
// author's profile fields joined in.
func (s *SQLiteStore) ListReviews(ctx context.Context, experienceID string) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.experience_id, r.user_id, r.rating, r.comment, r.created_at, p.username, p.avatar_url
		 FROM reviews r
		 JOIN profiles p ON p.id = r.user_id
		 WHERE r.experience_id = ?
		 ORDER BY r.created_at DESC`,
		experienceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		var avatarURL sql.NullString
		if err := rows.Scan(&r.ID, &r.ExperienceID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt, &r.Author, &avatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		r.AuthorAvatarURL = optional(avatarURL)
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return reviews, nil
}

// AddReview persists a review and fills in its ID, timestamp, and author
// fields.
func (s *SQLiteStore) AddReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt == 0 {
		review.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reviews (id, experience_id, user_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		review.ID, review.ExperienceID, review.UserID, review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	profile, err := s.GetProfile(ctx, review.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		review.Author = profile.Username
		review.AuthorAvatarURL = profile.AvatarURL
	}
	return review, nil
}
