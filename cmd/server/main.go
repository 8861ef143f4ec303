package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"studio-backend/internal/auth"
	"studio-backend/internal/cache"
	"studio-backend/internal/config"
	"studio-backend/internal/database"
	"studio-backend/internal/db"
	"studio-backend/internal/handlers"
	"studio-backend/internal/health"
	h "studio-backend/internal/http"
	"studio-backend/internal/middleware"
	"studio-backend/internal/monitoring"
	"studio-backend/internal/repositories"
	"studio-backend/internal/services"
	"studio-backend/internal/storage"
	"studio-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; without it caching is a no-op.
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, caching disabled: %v", err)
	} else {
		log.Println("[Cache] Redis connected")
	}

	// Run schema migrations
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("[Migrations] Failed: %v", err)
	}
	cancel()

	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	bankRepo := repositories.NewBankRepository(pool)
	quoteRepo := repositories.NewQuoteRepository(pool)
	estimateRepo := repositories.NewInteriorEstimateRepository(pool)
	generalEstimateRepo := repositories.NewGeneralEstimateRepository(pool)
	incomeRepo := repositories.NewIncomeRepository(pool)
	stageRepo := repositories.NewStageRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)
	commonExpenseRepo := repositories.NewCommonExpenseRepository(pool)
	catalogRepo := repositories.NewCatalogRepository(pool)
	presetRepo := repositories.NewPresetRepository(pool)
	txnRepo := repositories.NewOnlineTransactionRepository(pool)

	// Object storage for exported documents (optional)
	docStore, err := storage.New(
		cfg.Storage.Endpoint,
		cfg.Storage.Region,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
	)
	if err != nil {
		log.Fatalf("[Storage] %v", err)
	}
	if docStore == nil {
		log.Println("[Storage] Not configured, document archival disabled")
	}

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	totpService := services.NewTOTPService(userRepo)
	clientService := services.NewClientService(clientRepo)
	quoteService := services.NewQuoteService(quoteRepo)
	estimateService := services.NewEstimateService(estimateRepo)
	generalEstimateService := services.NewGeneralEstimateService(generalEstimateRepo)
	incomeService := services.NewIncomeService(incomeRepo)
	stageService := services.NewStageService(stageRepo)
	expenseService := services.NewExpenseService(expenseRepo, commonExpenseRepo)
	cashFlowService := services.NewCashFlowService(incomeRepo, expenseRepo, commonExpenseRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	presetService := services.NewPresetService(presetRepo)
	dashboardService := services.NewDashboardService(clientRepo, estimateRepo, quoteRepo, incomeRepo, expenseRepo, commonExpenseRepo)
	reportService := services.NewReportService(estimateRepo, clientRepo, docStore)
	razorpayService := services.NewRazorpayService(
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.WebhookSecret,
		txnRepo,
		incomeRepo,
	)
	if !razorpayService.Enabled() {
		log.Println("[Razorpay] Credentials not set, online payments disabled")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, jwtManager)
	totpHandler := handlers.NewTOTPHandler(totpService, userService, jwtManager)
	clientHandler := handlers.NewClientHandler(clientService)
	bankHandler := handlers.NewBankHandler(bankRepo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	estimateHandler := handlers.NewEstimateHandler(estimateService, reportService)
	generalEstimateHandler := handlers.NewGeneralEstimateHandler(generalEstimateService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	stageHandler := handlers.NewStageHandler(stageService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	cashFlowHandler := handlers.NewCashFlowHandler(cashFlowService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	presetHandler := handlers.NewPresetHandler(presetService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	paymentHandler := handlers.NewPaymentHandler(razorpayService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	// Ops server on its own port
	go monitoring.NewServer(pool, 9090).Start()

	router := h.NewRouter(
		authHandler,
		totpHandler,
		clientHandler,
		bankHandler,
		quoteHandler,
		estimateHandler,
		generalEstimateHandler,
		incomeHandler,
		stageHandler,
		expenseHandler,
		cashFlowHandler,
		catalogHandler,
		presetHandler,
		dashboardHandler,
		paymentHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("[Server] Failed: %v", err)
	}
}
