package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/services"
	"github.com/tenderfindsa/tender-match-service/internal/utils"

	"go.uber.org/zap"
)

// SavedTenderHandler handles bookmark HTTP requests.
type SavedTenderHandler struct {
	Service *services.SavedTenderService
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewSavedTenderHandler creates a new SavedTenderHandler.
func NewSavedTenderHandler(service *services.SavedTenderService, logger *zap.Logger, timeout time.Duration) *SavedTenderHandler {
	return &SavedTenderHandler{Service: service, Logger: logger, Timeout: timeout}
}

// GetSavedTenders handles GET /api/saved.
func (h *SavedTenderHandler) GetSavedTenders(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	saved, err := h.Service.GetSavedTenders(ctx, userID)
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to fetch saved tenders")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, saved); err != nil {
		h.Logger.Error("failed to encode saved tenders response", zap.Error(err))
	}
}

// SaveTender handles POST /api/saved/{tenderId}.
func (h *SavedTenderHandler) SaveTender(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	saved, err := h.Service.SaveTender(ctx, userID, r.PathValue("tenderId"))
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to save tender")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, saved); err != nil {
		h.Logger.Error("failed to encode saved tender response", zap.Error(err))
	}
}

// UnsaveTender handles DELETE /api/saved/{tenderId}.
func (h *SavedTenderHandler) UnsaveTender(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := h.Service.UnsaveTender(ctx, userID, r.PathValue("tenderId")); err != nil {
		respondServiceError(w, h.Logger, err, "failed to unsave tender")
		return
	}

	if err := utils.SendJSONResponse(w, http.StatusOK, map[string]bool{"success": true}); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetSavedStatus handles GET /api/saved/{tenderId}/status.
func (h *SavedTenderHandler) GetSavedStatus(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	saved, err := h.Service.IsTenderSaved(ctx, userID, r.PathValue("tenderId"))
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to check saved status")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, map[string]bool{"isSaved": saved}); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}
