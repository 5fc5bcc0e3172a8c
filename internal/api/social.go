package api

import (
	"log/slog"
	"net/http"

	"github.com/atlax/atlax/internal/middleware"
)

// handleListFriends returns the signed-in user's friends list.
func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	friends, err := s.store.ListFriends(r.Context(), userID)
	if err != nil {
		slog.Error("Friends fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch friends")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"friends":     friends,
		"total_count": len(friends),
	})
}

// handleListFriendActivity returns what the user's online friends are
// playing right now.
func (s *Server) handleListFriendActivity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	activity, err := s.store.ListFriendActivity(r.Context(), userID)
	if err != nil {
		slog.Error("Friend activity fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"activity":    activity,
		"total_count": len(activity),
	})
}

// handleListNews returns the platform news feed.
func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	news, err := s.store.ListNews(r.Context())
	if err != nil {
		slog.Error("News fetch failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"articles":    news,
		"total_count": len(news),
	})
}
