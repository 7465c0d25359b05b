package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-planner/internal/config"
	"budget-planner/internal/database"
	"budget-planner/internal/handlers"
	"budget-planner/internal/middleware"
	"budget-planner/internal/repositories"
	"budget-planner/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	spendingRepo := repositories.NewSpendingRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	calculator := services.NewAllocationCalculator()
	detector := services.NewConflictDetector()
	committer := services.NewCommitPlanner(budgetRepo, metrics, cfg.Planner.MaxCommitWorkers)
	insightService := services.NewInsightService(categoryRepo, spendingRepo)
	ledgerStore := services.NewLedgerStore(cfg.Planner.SessionTTL)
	plannerService := services.NewPlannerService(calculator, detector, committer, insightService, budgetRepo, metrics, ledgerStore)
	spendingGenerator := services.NewSpendingGenerator(spendingRepo)

	sweepCtx, stopSweeping := context.WithCancel(context.Background())
	defer stopSweeping()
	go ledgerStore.StartSweeping(sweepCtx, cfg.Planner.SessionSweepInterval)

	// Handlers
	planHandler := handlers.NewPlanHandler(plannerService)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, insightService)
	devHandler := handlers.NewDevHandler(cfg, spendingGenerator)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	plans := api.Group("/plans")
	plans.POST("", planHandler.StartPlan)
	plans.GET("/:sessionId", planHandler.GetPlan)
	plans.PUT("/:sessionId/inputs", planHandler.UpdateInputs)
	plans.POST("/:sessionId/items", planHandler.AddItem)
	plans.POST("/:sessionId/items/:itemId/toggle", planHandler.ToggleItem)
	plans.PUT("/:sessionId/items/:itemId/amount", planHandler.SetItemAmount)
	plans.DELETE("/:sessionId/items/:itemId", planHandler.RemoveItem)
	plans.GET("/:sessionId/conflicts", planHandler.ScreenConflicts)
	plans.POST("/:sessionId/commit", planHandler.CommitPlan)
	plans.DELETE("/:sessionId", planHandler.DiscardPlan)

	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.GET("/:budgetId", budgetHandler.GetBudget)
	budgets.DELETE("/:budgetId", budgetHandler.DeleteBudget)

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:categoryId", categoryHandler.DeleteCategory)

	api.GET("/insights", categoryHandler.GetInsights)

	if cfg.IsDevelopment() {
		dev := api.Group("/dev")
		dev.POST("/spending-data", devHandler.GenerateSpendingData)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	slog.Info("Server stopped gracefully")
}
