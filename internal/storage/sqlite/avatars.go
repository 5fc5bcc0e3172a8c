package sqlite

import (
	"context"
	"fmt"

	"github.com/atlax/atlax/internal/avatar"
)

// GetEquippedSet returns the user's saved equipped set. The bool is false
// when the user has never saved one.
func (s *SQLiteStore) GetEquippedSet(ctx context.Context, userID string) (avatar.EquippedSet, bool, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT i."+itemColumns+` FROM equipped_items e
		 JOIN items i ON i.id = e.item_id
		 WHERE e.user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query equipped set: %w", err)
	}
	defer rows.Close()

	set := avatar.EquippedSet{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, false, err
		}
		set = append(set, item)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate equipped set: %w", err)
	}
	if len(set) == 0 {
		return nil, false, nil
	}
	return set, true, nil
}

// SaveEquippedSet replaces the user's saved set. The delete and inserts run
// in one transaction, so the stored value is always some complete set the
// client sent; whichever save commits last wins.
func (s *SQLiteStore) SaveEquippedSet(ctx context.Context, userID string, set avatar.EquippedSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM equipped_items WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to clear equipped set: %w", err)
	}
	for _, item := range set {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO equipped_items (user_id, item_id) VALUES (?, ?)",
			userID, item.ID,
		); err != nil {
			return fmt.Errorf("failed to save equipped item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
