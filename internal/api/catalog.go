package api

import (
	"log/slog"
	"net/http"

	"github.com/atlax/atlax/internal/avatar"
	"github.com/atlax/atlax/internal/middleware"
)

// handleGetCatalog returns the full default catalog.
func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListCatalogItems(r.Context())
	if err != nil {
		slog.Error("Catalog fetch failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch catalog")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"total_count": len(items),
	})
}

// handleBrowseCatalog returns the items under a top-level browse tab,
// optionally restricted to one sub-category. "My Items" needs a signed-in
// user and yields an empty list for anonymous browsers.
func (s *Server) handleBrowseCatalog(w http.ResponseWriter, r *http.Request) {
	topLevel := r.URL.Query().Get("top")
	if topLevel == "" {
		respondError(w, http.StatusBadRequest, "Missing top query parameter")
		return
	}

	var sub avatar.Category
	if raw := r.URL.Query().Get("sub"); raw != "" {
		parsed, err := avatar.ParseCategory(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		sub = parsed
	}

	var items []avatar.Item
	if topLevel == avatar.TopMyItems {
		owned, err := s.userItems(r)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to fetch items")
			return
		}
		items = avatar.MyItems(owned)
	} else {
		catalog, err := s.store.ListCatalogItems(r.Context())
		if err != nil {
			slog.Error("Catalog fetch failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch catalog")
			return
		}
		items = avatar.Browse(catalog, topLevel, sub)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":          items,
		"total_count":    len(items),
		"sub_categories": avatar.SubCategories(topLevel),
	})
}

// handleGetAvatarCatalog returns the Avatars tab: default base avatars plus
// the signed-in user's own, as two partitions.
func (s *Server) handleGetAvatarCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.store.ListCatalogItems(r.Context())
	if err != nil {
		slog.Error("Catalog fetch failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch catalog")
		return
	}

	owned, err := s.userItems(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"default_avatars": avatar.DefaultAvatars(catalog),
		"user_avatars":    avatar.UserAvatars(owned),
	})
}

// userItems returns the signed-in user's items, or an empty slice for
// anonymous requests.
func (s *Server) userItems(r *http.Request) ([]avatar.Item, error) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		return []avatar.Item{}, nil
	}
	items, err := s.store.ListUserItems(r.Context(), userID)
	if err != nil {
		slog.Error("User items fetch failed", "user_id", userID, "error", err)
		return nil, err
	}
	return items, nil
}
