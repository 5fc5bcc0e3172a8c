package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/atlax/atlax/internal/middleware"
	"github.com/atlax/atlax/internal/models"
)

type addReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// handleListExperiences returns the experience catalog.
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := s.store.ListExperiences(r.Context())
	if err != nil {
		slog.Error("Experiences fetch failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch experiences")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"experiences": experiences,
		"total_count": len(experiences),
	})
}

// handleGetExperience returns a single experience by ID.
func (s *Server) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "experienceID")
	experience, err := s.store.GetExperience(r.Context(), id)
	if err != nil {
		slog.Error("Experience fetch failed", "experience_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}
	if experience == nil {
		respondError(w, http.StatusNotFound, "Experience not found")
		return
	}
	respondJSON(w, http.StatusOK, experience)
}

// handleListReviews returns an experience's reviews, newest first.
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "experienceID")
	reviews, err := s.store.ListReviews(r.Context(), id)
	if err != nil {
		slog.Error("Reviews fetch failed", "experience_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reviews":     reviews,
		"total_count": len(reviews),
	})
}

// handleAddReview posts a review on an experience. Rating must be 1 to 5
// and the comment cannot be empty.
func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var req addReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		respondError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	req.Comment = strings.TrimSpace(req.Comment)
	if req.Comment == "" {
		respondError(w, http.StatusBadRequest, "Comment is required")
		return
	}

	id := chi.URLParam(r, "experienceID")
	experience, err := s.store.GetExperience(r.Context(), id)
	if err != nil {
		slog.Error("Experience fetch failed", "experience_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}
	if experience == nil {
		respondError(w, http.StatusNotFound, "Experience not found")
		return
	}

	review, err := s.store.AddReview(r.Context(), &models.Review{
		ExperienceID: id,
		UserID:       middleware.GetUserID(r.Context()),
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		slog.Error("Review creation failed", "experience_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to post review")
		return
	}

	respondJSON(w, http.StatusCreated, review)
}
