package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/services"
	"github.com/tenderfindsa/tender-match-service/internal/utils"

	"go.uber.org/zap"
)

// AdminHandler handles the administrative trigger endpoints for tender
// ingestion and batch matching.
type AdminHandler struct {
	Sync     *services.TenderSyncService
	Matching *services.MatchingService
	Logger   *zap.Logger
	Timeout  time.Duration
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(sync *services.TenderSyncService, matching *services.MatchingService, logger *zap.Logger, timeout time.Duration) *AdminHandler {
	return &AdminHandler{Sync: sync, Matching: matching, Logger: logger, Timeout: timeout}
}

// SyncTenders handles POST /api/sync-tenders.
func (h *AdminHandler) SyncTenders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := h.Sync.SyncTenders(ctx); err != nil {
		h.Logger.Error("tender sync failed", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to sync tenders")
		return
	}

	if err := utils.SendJSONResponse(w, http.StatusOK, map[string]string{"message": "Tender sync completed"}); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// TriggerMatching handles POST /api/trigger-matching.
func (h *AdminHandler) TriggerMatching(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := h.Matching.RunMatchingForAllUsers(ctx); err != nil {
		h.Logger.Error("batch matching failed", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to trigger matching")
		return
	}

	if err := utils.SendJSONResponse(w, http.StatusOK, map[string]string{"message": "Matching process completed"}); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}
