package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	api "hrassets-backend/internal/api/http"
	"hrassets-backend/internal/config"
	"hrassets-backend/internal/logger"
	"hrassets-backend/internal/repository/postgres"
	"hrassets-backend/internal/repository/rediscache"
	"hrassets-backend/internal/security"
	"hrassets-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HR Assets Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Team roster cache is optional: without a Redis address, team queries
	// recompute the projection from Postgres on every call.
	var teamCache service.TeamRosterCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		teamCache = rediscache.NewTeamCache(client, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		logger.Info("Team roster cache enabled", "addr", cfg.Redis.Addr, "ttl_seconds", cfg.Redis.TTLSeconds)
	}

	// Initialize Security
	tokenValidator := security.NewTokenValidator(cfg.JWT.Secret)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	workflowSvc := service.NewWorkflowService(
		store.RequestRepository,
		store.AssetRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
		teamCache,
	)
	assetSvc := service.NewAssetService(store.AssetRepository, store.UserRepository)
	teamSvc := service.NewTeamService(store.RequestRepository, store.UserRepository, teamCache)
	adminSvc := service.NewAdminService(store.RequestRepository, store.UserRepository, store.PackageRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP handlers
	router := api.NewRouter(tokenValidator, api.Handlers{
		Requests:      api.NewRequestHandler(workflowSvc),
		Assets:        api.NewAssetHandler(assetSvc),
		Teams:         api.NewTeamHandler(teamSvc, adminSvc),
		Notifications: api.NewNotificationHandler(noteSvc),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
