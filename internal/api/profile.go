package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/atlax/atlax/internal/middleware"
	"github.com/atlax/atlax/internal/models"
)

// handleGetProfile returns the signed-in user's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		slog.Error("Profile fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if profile == nil {
		respondError(w, http.StatusNotFound, "Profile not found")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// handleUpdateProfile applies a partial update to the signed-in user's
// profile. Omitted fields are left unchanged.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		if trimmed == "" {
			respondError(w, http.StatusBadRequest, "Username cannot be empty")
			return
		}
		update.Username = &trimmed
	}

	userID := middleware.GetUserID(r.Context())
	profile, err := s.store.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		slog.Error("Profile update failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
