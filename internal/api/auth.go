package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/atlax/atlax/internal/auth"
	"github.com/atlax/atlax/internal/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

// handleRegister creates the account, its profile, and the welcome currency
// grant, then returns a session token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if req.Email == "" || req.Username == "" {
		respondError(w, http.StatusBadRequest, "Email and username are required")
		return
	}

	user, err := s.authn.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrEmailExists):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("Registration failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	profile := &models.Profile{ID: user.ID, Username: req.Username}
	if err := s.store.CreateProfile(r.Context(), profile); err != nil {
		slog.Error("Profile creation failed", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if s.welcomeGrant > 0 {
		grant := &models.Transaction{
			UserID:      user.ID,
			Description: "Welcome bonus",
			Amount:      s.welcomeGrant,
		}
		if err := s.store.AddTransaction(r.Context(), grant); err != nil {
			// The account exists; a missing bonus is not worth failing
			// registration over.
			slog.Error("Welcome grant failed", "user_id", user.ID, "error", err)
		} else {
			profile.Currency = s.welcomeGrant
		}
	}

	s.respondSession(w, http.StatusCreated, user, profile)
}

// handleLogin verifies credentials and returns a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.authn.Authenticate(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	profile, err := s.store.GetProfile(r.Context(), user.ID)
	if err != nil {
		slog.Error("Profile fetch failed", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	s.respondSession(w, http.StatusOK, user, profile)
}

func (s *Server) respondSession(w http.ResponseWriter, status int, user *models.User, profile *models.Profile) {
	token, err := s.jwt.Generate(user)
	if err != nil {
		slog.Error("Token generation failed", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Session creation failed")
		return
	}
	respondJSON(w, status, sessionResponse{Token: token, Profile: profile})
}
