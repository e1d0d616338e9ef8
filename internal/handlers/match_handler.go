package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/services"
	"github.com/tenderfindsa/tender-match-service/internal/utils"

	"go.uber.org/zap"
)

// MatchHandler handles tender match HTTP requests.
type MatchHandler struct {
	Service *services.MatchingService
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(service *services.MatchingService, logger *zap.Logger, timeout time.Duration) *MatchHandler {
	return &MatchHandler{Service: service, Logger: logger, Timeout: timeout}
}

// GetMatches handles GET /api/matches.
func (h *MatchHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limit, _, err := utils.ParseLimitOffset(r.URL.Query().Get("limit"), "", 50, 100)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := h.Service.GetMatches(ctx, userID, limit)
	if err != nil {
		h.Logger.Error("failed to fetch matches", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch matches")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, matches); err != nil {
		h.Logger.Error("failed to encode matches response", zap.Error(err))
	}
}

// MarkMatchViewed handles POST /api/matches/{tenderId}/view.
func (h *MatchHandler) MarkMatchViewed(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := h.Service.MarkMatchViewed(ctx, userID, r.PathValue("tenderId")); err != nil {
		h.Logger.Error("failed to mark match as viewed", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to mark match as viewed")
		return
	}

	if err := utils.SendJSONResponse(w, http.StatusOK, map[string]bool{"success": true}); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// respondServiceError unwraps models.ErrorResponse errors into their HTTP
// status and hides everything else behind the fallback message.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	logger.Error(fallback, zap.Error(err))
	if errorResponse, ok := err.(*models.ErrorResponse); ok {
		utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
		return
	}
	utils.SendErrorResponse(w, http.StatusInternalServerError, fallback)
}
