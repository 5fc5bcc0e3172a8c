package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atlax/atlax/internal/avatar"
	"github.com/atlax/atlax/internal/storage"
)

const itemColumns = "id, name, model_url, thumbnail_url, category, user_owned"

// ListCatalogItems returns the default (system-provided) catalog.
func (s *SQLiteStore) ListCatalogItems(ctx context.Context) ([]avatar.Item, error) {
	return s.queryItems(ctx,
		"SELECT "+itemColumns+" FROM items WHERE owner_id IS NULL ORDER BY created_at, id",
	)
}

// ListUserItems returns the items owned by a user.
func (s *SQLiteStore) ListUserItems(ctx context.Context, userID string) ([]avatar.Item, error) {
	return s.queryItems(ctx,
		"SELECT "+itemColumns+" FROM items WHERE owner_id = ? ORDER BY created_at, id",
		userID,
	)
}

// AddUserItem persists a user-contributed item with a fresh UUID.
func (s *SQLiteStore) AddUserItem(ctx context.Context, userID string, draft storage.ItemDraft) (*avatar.Item, error) {
	item := &avatar.Item{
		ID:           uuid.New().String(),
		Name:         draft.Name,
		ModelURL:     draft.ModelURL,
		ThumbnailURL: draft.ThumbnailURL,
		Category:     draft.Category,
		UserOwned:    true,
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (id, owner_id, name, model_url, thumbnail_url, category, user_owned, created_at) VALUES (?, ?, ?, ?, ?, ?, 1, ?)",
		item.ID, userID, item.Name, item.ModelURL, nullable(item.ThumbnailURL), string(item.Category), time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add user item: %w", err)
	}
	return item, nil
}

func (s *SQLiteStore) queryItems(ctx context.Context, query string, args ...any) ([]avatar.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []avatar.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

func scanItem(rows *sql.Rows) (avatar.Item, error) {
	var item avatar.Item
	var thumbnail sql.NullString
	var category string
	if err := rows.Scan(&item.ID, &item.Name, &item.ModelURL, &thumbnail, &category, &item.UserOwned); err != nil {
		return avatar.Item{}, fmt.Errorf("failed to scan item: %w", err)
	}
	item.ThumbnailURL = optional(thumbnail)
	item.Category = avatar.Category(category)
	return item, nil
}
