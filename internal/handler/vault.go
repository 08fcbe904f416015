package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/genvault/genvault-go/internal/middleware"
	"github.com/genvault/genvault-go/internal/model"
	"github.com/genvault/genvault-go/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxUserIDLength = 255

// VaultHandler handles HTTP requests for vault entry operations.
type VaultHandler struct {
	service *service.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(svc *service.VaultService) *VaultHandler {
	return &VaultHandler{service: svc}
}

// HandleListEntries handles GET /api/entries/{userId} requests.
func (h *VaultHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.service.ListEntries(r.Context(), userID)
	if err != nil {
		slog.Error("listing entries failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleSaveEntry handles POST /api/save/{userId} requests.
func (h *VaultHandler) HandleSaveEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var draft model.Draft
	if !decodeJSON(w, r, 1<<20, &draft) { // 1MB
		return
	}

	resp, err := h.service.SaveEntry(r.Context(), userID, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("saving entry failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func userIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := chi.URLParam(r, "userId")
	if userID == "" || len(userID) > maxUserIDLength {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid user id"))
		return "", false
	}
	if authUser, ok := middleware.UserIDFromContext(r.Context()); ok && authUser != userID {
		writeJSON(w, http.StatusForbidden, errorResponse("token does not grant access to this vault"))
		return "", false
	}
	return userID, true
}
