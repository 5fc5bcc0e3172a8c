package models

// Transaction is one entry in a user's currency ledger.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// UserID is the ledger owner.
	UserID string `json:"-"`

	// Description says what the transaction was for.
	Description string `json:"description"`

	// Amount is signed: negative for debits, positive for credits.
	Amount int64 `json:"amount"`

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64 `json:"created_at"`
}
