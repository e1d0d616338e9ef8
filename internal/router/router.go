package router

import (
	"net/http"

	"github.com/tenderfindsa/tender-match-service/internal/handlers"
)

// InitRoutes wires up the HTTP route table.
func InitRoutes(
	profileHandler *handlers.ProfileHandler,
	tenderHandler *handlers.TenderHandler,
	matchHandler *handlers.MatchHandler,
	savedHandler *handlers.SavedTenderHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/ping", handlers.PingHandler)

	mux.HandleFunc("GET /api/profile", profileHandler.GetProfile)
	mux.HandleFunc("POST /api/profile", profileHandler.SaveProfile)

	mux.HandleFunc("GET /api/tenders", tenderHandler.GetTenders)
	mux.HandleFunc("GET /api/tenders/{tenderId}", tenderHandler.GetTender)

	mux.HandleFunc("GET /api/matches", matchHandler.GetMatches)
	mux.HandleFunc("POST /api/matches/{tenderId}/view", matchHandler.MarkMatchViewed)

	mux.HandleFunc("GET /api/saved", savedHandler.GetSavedTenders)
	mux.HandleFunc("POST /api/saved/{tenderId}", savedHandler.SaveTender)
	mux.HandleFunc("DELETE /api/saved/{tenderId}", savedHandler.UnsaveTender)
	mux.HandleFunc("GET /api/saved/{tenderId}/status", savedHandler.GetSavedStatus)

	mux.HandleFunc("GET /api/notifications", notificationHandler.GetNotifications)
	mux.HandleFunc("GET /api/stats", tenderHandler.GetStats)

	mux.HandleFunc("POST /api/sync-tenders", adminHandler.SyncTenders)
	mux.HandleFunc("POST /api/trigger-matching", adminHandler.TriggerMatching)

	return mux
}
