package main

import (
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	api "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/jobs"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/memory"
	"carrental-backend/internal/scheduler"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
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
	logger.Info("Starting CarRental Ledger Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Owner configuration", "identity", cfg.Owner.Identity)

	// Initialize in-memory store. Ledger state does not survive restarts.
	store := memory.NewStore(cfg.Events.HistoryLimit)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Core serialization: one call runs to completion before the next.
	var serialize sync.Mutex

	// Initialize Services
	transfer := service.NewLoggingTransferrer()
	eventSvc := service.NewEventService(store.EventRepository)
	ownershipSvc := service.NewOwnershipService(domain.Identity(cfg.Owner.Identity), eventSvc)
	accountSvc := service.NewAccountService(store.AccountRepository, store.TreasuryRepository, transfer, eventSvc)
	catalogSvc := service.NewCatalogService(store.ItemRepository, ownershipSvc, eventSvc)
	rentalSvc := service.NewRentalService(store.AccountRepository, store.ItemRepository, eventSvc)
	treasurySvc := service.NewTreasuryService(store.TreasuryRepository, ownershipSvc, transfer, eventSvc)

	// Initialize HTTP handlers
	clock := service.Clock(func() int64 { return time.Now().Unix() })
	handlers := api.Handlers{
		Accounts: api.NewAccountHandler(accountSvc),
		Catalog:  api.NewCatalogHandler(catalogSvc),
		Rentals:  api.NewRentalHandler(rentalSvc, clock),
		Admin:    api.NewAdminHandler(ownershipSvc, treasurySvc, eventSvc, accountSvc),
	}
	router := api.NewRouter(handlers, tokenManager, &serialize)

	// Start the snapshot scheduler
	jobRunner := jobs.NewJobRunner(&serialize, store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()
	if !sched.IsRunning() {
		logger.Warn("No scheduled jobs registered; snapshot gauges will not refresh")
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
