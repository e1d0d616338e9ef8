package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/services"
	"github.com/tenderfindsa/tender-match-service/internal/utils"

	"go.uber.org/zap"
)

// ProfileHandler handles business profile HTTP requests.
type ProfileHandler struct {
	Service *services.ProfileService
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService, logger *zap.Logger, timeout time.Duration) *ProfileHandler {
	return &ProfileHandler{Service: service, Logger: logger, Timeout: timeout}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	profile, err := h.Service.GetProfile(ctx, userID)
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to fetch profile")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, profile); err != nil {
		h.Logger.Error("failed to encode profile response", zap.Error(err))
	}
}

// SaveProfile handles POST /api/profile. Saving recomputes the user's matches.
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID := utils.UserIDFromRequest(r)
	if userID == "" {
		utils.SendErrorResponse(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var req models.BusinessProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.SaveProfile(ctx, userID, req)
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to save profile")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, profile); err != nil {
		h.Logger.Error("failed to encode profile response", zap.Error(err))
	}
}

