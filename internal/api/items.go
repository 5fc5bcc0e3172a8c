package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/atlax/atlax/internal/assets"
	"github.com/atlax/atlax/internal/avatar"
	"github.com/atlax/atlax/internal/middleware"
	"github.com/atlax/atlax/internal/storage"
)

// maxUploadSize bounds a single model upload (32 MiB).
const maxUploadSize = 32 << 20

// handleListUserItems returns the signed-in user's own items.
func (s *Server) handleListUserItems(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	items, err := s.store.ListUserItems(r.Context(), userID)
	if err != nil {
		slog.Error("User items fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"total_count": len(items),
	})
}

// handleUploadItem ingests a user-contributed model file and registers it
// as a wearable item. The request is multipart form data with a "model"
// file plus "name" and "category" fields.
func (s *Server) handleUploadItem(w http.ResponseWriter, r *http.Request) {
	if s.ingestor == nil {
		respondError(w, http.StatusNotImplemented, "Uploads are not enabled")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "Item name is required")
		return
	}

	category, err := avatar.ParseCategory(r.FormValue("category"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("model")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Model file is required")
		return
	}
	defer file.Close()

	modelURL, err := s.ingestor.Store(header.Filename, file)
	if err != nil {
		if errors.Is(err, assets.ErrUnsupportedFormat) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Upload failed", "filename", header.Filename, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	userID := middleware.GetUserID(r.Context())
	item, err := s.store.AddUserItem(r.Context(), userID, storage.ItemDraft{
		Name:     name,
		ModelURL: modelURL,
		Category: category,
	})
	if err != nil {
		slog.Error("Item registration failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to register item")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}
