package main

import (
	"log"
	"net/http"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/db"
	"github.com/tenderfindsa/tender-match-service/internal/dispatch"
	"github.com/tenderfindsa/tender-match-service/internal/handlers"
	"github.com/tenderfindsa/tender-match-service/internal/logger"
	"github.com/tenderfindsa/tender-match-service/internal/repository"
	"github.com/tenderfindsa/tender-match-service/internal/router"
	"github.com/tenderfindsa/tender-match-service/internal/router/config"
	"github.com/tenderfindsa/tender-match-service/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	zapLogger, err := logger.New(true, false)
	if err != nil {
		log.Fatalf("cannot create logger: %v", err)
	}
	defer zapLogger.Sync()

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		zapLogger.Fatal("error initializing database", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := repository.NewPostgresUserRepository(dbPool)
	profileRepo := repository.NewPostgresProfileRepository(dbPool)
	tenderRepo := repository.NewPostgresTenderRepository(dbPool)
	matchRepo := repository.NewPostgresMatchRepository(dbPool)
	savedRepo := repository.NewPostgresSavedTenderRepository(dbPool)
	notificationRepo := repository.NewPostgresNotificationRepository(dbPool)

	gateway := dispatch.NewGateway(
		dispatch.NewSMTPEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromEmail),
		dispatch.NewHTTPSMSSender(cfg.SMSAPIURL, cfg.SMSAPIToken, cfg.SMSSender),
	)

	notificationService := services.NewNotificationService(notificationRepo, gateway, zapLogger)
	matchingService := services.NewMatchingService(profileRepo, tenderRepo, matchRepo, userRepo,
		notificationService, zapLogger, cfg.NotifyTimeout)
	profileService := services.NewProfileService(profileRepo, matchingService, zapLogger)
	tenderService := services.NewTenderService(tenderRepo)
	savedService := services.NewSavedTenderService(savedRepo, tenderRepo)
	syncService := services.NewTenderSyncService(tenderRepo, zapLogger, cfg.ETendersAPIURL)

	requestTimeout := 5 * time.Second
	profileHandler := handlers.NewProfileHandler(profileService, zapLogger, 30*time.Second)
	tenderHandler := handlers.NewTenderHandler(tenderService, zapLogger, requestTimeout)
	matchHandler := handlers.NewMatchHandler(matchingService, zapLogger, requestTimeout)
	savedHandler := handlers.NewSavedTenderHandler(savedService, zapLogger, requestTimeout)
	notificationHandler := handlers.NewNotificationHandler(notificationService, zapLogger, requestTimeout)
	adminHandler := handlers.NewAdminHandler(syncService, matchingService, zapLogger, 5*time.Minute)

	routes := router.InitRoutes(profileHandler, tenderHandler, matchHandler,
		savedHandler, notificationHandler, adminHandler)

	zapLogger.Info("server is listening", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance:", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
