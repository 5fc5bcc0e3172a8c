package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atlax/atlax/internal/avatar"
	"github.com/atlax/atlax/internal/middleware"
)

type avatarResponse struct {
	Items avatar.EquippedSet `json:"items"`
	Scene avatar.Scene       `json:"scene"`
}

type saveAvatarRequest struct {
	ItemIDs []string `json:"item_ids"`
}

type toggleRequest struct {
	ItemIDs      []string `json:"item_ids"`
	ToggleItemID string   `json:"toggle_item_id"`
}

// handleGetAvatar returns the user's saved equipped set, falling back to
// the reset default when nothing has been saved yet.
func (s *Server) handleGetAvatar(w http.ResponseWriter, r *http.Request) {
	set, err := s.loadOrDefaultSet(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load avatar")
		return
	}
	respondJSON(w, http.StatusOK, avatarResponse{Items: set, Scene: avatar.ComposeScene(set)})
}

// handleSaveAvatar persists the equipped set the client sends, by item ID.
// The set must satisfy the slot invariant and reference only items the
// user can wear (default catalog or their own).
func (s *Server) handleSaveAvatar(w http.ResponseWriter, r *http.Request) {
	var req saveAvatarRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set, err := s.resolveItems(r, req.ItemIDs)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := avatar.Validate(set); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := middleware.GetUserID(r.Context())
	if err := s.store.SaveEquippedSet(r.Context(), userID, set); err != nil {
		// The client keeps its in-memory set; the previously stored value
		// is still intact.
		slog.Error("Avatar save failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save avatar")
		return
	}

	respondJSON(w, http.StatusOK, avatarResponse{Items: set, Scene: avatar.ComposeScene(set)})
}

// handleToggleAvatar resolves one toggle against a client-held set and
// returns the result. Nothing is persisted; the client saves explicitly.
func (s *Server) handleToggleAvatar(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, err := s.resolveItems(r, req.ItemIDs)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	toggled, err := s.resolveItems(r, []string{req.ToggleItemID})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	next := avatar.Toggle(current, toggled[0])
	respondJSON(w, http.StatusOK, avatarResponse{Items: next, Scene: avatar.ComposeScene(next)})
}

// handleGetAvatarScene returns just the render-surface input for the saved
// set.
func (s *Server) handleGetAvatarScene(w http.ResponseWriter, r *http.Request) {
	set, err := s.loadOrDefaultSet(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load avatar")
		return
	}
	respondJSON(w, http.StatusOK, avatar.ComposeScene(set))
}

func (s *Server) loadOrDefaultSet(r *http.Request) (avatar.EquippedSet, error) {
	userID := middleware.GetUserID(r.Context())
	set, found, err := s.store.GetEquippedSet(r.Context(), userID)
	if err != nil {
		slog.Error("Equipped set fetch failed", "user_id", userID, "error", err)
		return nil, err
	}
	if found {
		return set, nil
	}

	catalog, err := s.store.ListCatalogItems(r.Context())
	if err != nil {
		slog.Error("Catalog fetch failed", "error", err)
		return nil, err
	}
	return avatar.Reset(catalog), nil
}

// resolveItems maps item IDs to full items from the default catalog and
// the user's own inventory. Unknown IDs are a validation error.
func (s *Server) resolveItems(r *http.Request, ids []string) (avatar.EquippedSet, error) {
	catalog, err := s.store.ListCatalogItems(r.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog")
	}
	owned, err := s.userItems(r)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items")
	}

	byID := make(map[string]avatar.Item, len(catalog)+len(owned))
	for _, it := range catalog {
		byID[it.ID] = it
	}
	for _, it := range owned {
		byID[it.ID] = it
	}

	set := make(avatar.EquippedSet, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown item: %s", id)
		}
		set = append(set, it)
	}
	return set, nil
}
