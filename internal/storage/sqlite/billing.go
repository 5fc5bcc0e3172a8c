package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atlax/atlax/internal/models"
)

// ListTransactions returns a user's currency ledger, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, description, amount, created_at FROM transactions WHERE user_id = ? ORDER BY created_at DESC, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}

// AddTransaction appends a ledger entry and adjusts the profile balance in
// the same database transaction.
func (s *SQLiteStore) AddTransaction(ctx context.Context, entry *models.Transaction) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO transactions (id, user_id, description, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.UserID, entry.Description, entry.Amount, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE profiles SET currency = currency + ? WHERE id = ?",
		entry.Amount, entry.UserID,
	); err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
