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

// TenderHandler handles tender catalog HTTP requests.
type TenderHandler struct {
	Service *services.TenderService
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewTenderHandler creates a new TenderHandler.
func NewTenderHandler(service *services.TenderService, logger *zap.Logger, timeout time.Duration) *TenderHandler {
	return &TenderHandler{Service: service, Logger: logger, Timeout: timeout}
}

// GetTenders handles GET /api/tenders.
func (h *TenderHandler) GetTenders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	query := r.URL.Query()

	limit, offset, err := utils.ParseLimitOffset(query.Get("limit"), query.Get("offset"), 20, 50)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	valueMin, err := utils.ParseOptionalFloat(query.Get("value_min"))
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	valueMax, err := utils.ParseOptionalFloat(query.Get("value_max"))
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.TenderFilter{
		Categories: query["category"],
		Province:   query.Get("province"),
		ValueMin:   valueMin,
		ValueMax:   valueMax,
		Status:     query.Get("status"),
		Search:     query.Get("search"),
		Limit:      limit,
		Offset:     offset,
	}

	tenders, err := h.Service.FetchTenders(ctx, filter)
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to fetch tenders")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, tenders); err != nil {
		h.Logger.Error("failed to encode tenders response", zap.Error(err))
	}
}

// GetTender handles GET /api/tenders/{tenderId}.
func (h *TenderHandler) GetTender(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tender, err := h.Service.GetTender(ctx, r.PathValue("tenderId"))
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to fetch tender")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, tender); err != nil {
		h.Logger.Error("failed to encode tender response", zap.Error(err))
	}
}

// GetStats handles GET /api/stats. The user id is optional; without it only
// catalog counts are returned.
func (h *TenderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	stats, err := h.Service.GetStats(ctx, utils.UserIDFromRequest(r))
	if err != nil {
		respondServiceError(w, h.Logger, err, "failed to fetch stats")
		return
	}

	if err = utils.SendJSONResponse(w, http.StatusOK, stats); err != nil {
		h.Logger.Error("failed to encode stats response", zap.Error(err))
	}
}

