package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atlax/atlax/internal/models"
)

// ListFriends returns a user's friends: their own rows plus the
// platform-wide demo entries (user_id NULL).
func (s *SQLiteStore) ListFriends(ctx context.Context, userID string) ([]models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, avatar_url, status, current_experience_id
		 FROM friends
		 WHERE user_id = ? OR user_id IS NULL
		 ORDER BY status, name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	friends := []models.Friend{}
	for rows.Next() {
		var f models.Friend
		var status string
		var expID sql.NullString
		if err := rows.Scan(&f.Name, &f.AvatarURL, &status, &expID); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		f.Status = models.FriendStatus(status)
		f.CurrentExperienceID = optional(expID)
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}
	return friends, nil
}

// ListFriendActivity returns what the user's online friends are playing.
func (s *SQLiteStore) ListFriendActivity(ctx context.Context, userID string) ([]models.FriendActivity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT f.name, f.avatar_url, e.id, e.title, e.creator, e.creator_avatar_url, e.thumbnail_url, e.player_count, e.genre, e.description
		 FROM friends f
		 JOIN experiences e ON e.id = f.current_experience_id
		 WHERE (f.user_id = ? OR f.user_id IS NULL) AND f.status = 'online'
		 ORDER BY f.name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query friend activity: %w", err)
	}
	defer rows.Close()

	activity := []models.FriendActivity{}
	for rows.Next() {
		var a models.FriendActivity
		var genre string
		if err := rows.Scan(
			&a.FriendName, &a.FriendAvatarURL,
			&a.Experience.ID, &a.Experience.Title, &a.Experience.Creator, &a.Experience.CreatorAvatarURL,
			&a.Experience.ThumbnailURL, &a.Experience.PlayerCount, &genre, &a.Experience.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan friend activity: %w", err)
		}
		a.Experience.Genre = models.ExperienceGenre(genre)
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friend activity: %w", err)
	}
	return activity, nil
}

// ListNews returns the news feed, newest first.
func (s *SQLiteStore) ListNews(ctx context.Context) ([]models.NewsArticle, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, category, summary, image_url FROM news ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	articles := []models.NewsArticle{}
	for rows.Next() {
		var n models.NewsArticle
		if err := rows.Scan(&n.ID, &n.Title, &n.Category, &n.Summary, &n.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan news article: %w", err)
		}
		articles = append(articles, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate news: %w", err)
	}
	return articles, nil
}
