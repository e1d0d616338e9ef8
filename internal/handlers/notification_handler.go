package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/services"
	"github.com/tenderfindsa/tender-match-service/internal/utils"

	"go.uber.org/zap"
)

// NotificationHandler handles notification history HTTP requests.
type NotificationHandler struct {
	Service *services.NotificationService
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService, logger *zap.Logger, timeout time.Duration) *NotificationHandler {
	return &NotificationHandler{Service: service, Logger: logger, Timeout: timeout}
}

// GetNotifications handles GET /api/notifications.
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
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

	notifications, err := h.Service.GetNotifications(ctx, userID, limit)
	if err != nil {
		h.Logger.Error("failed to fetch notifications", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch notifications")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, notifications); err != nil {
		h.Logger.Error("failed to encode notifications response", zap.Error(err))
	}
}
