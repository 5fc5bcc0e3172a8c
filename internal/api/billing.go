package api

import (
	"log/slog"
	"net/http"

	"github.com/atlax/atlax/internal/middleware"
)

// handleListTransactions returns the signed-in user's currency ledger,
// newest first. The profile carries the resulting balance.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	transactions, err := s.store.ListTransactions(r.Context(), userID)
	if err != nil {
		slog.Error("Transactions fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"total_count":  len(transactions),
	})
}
