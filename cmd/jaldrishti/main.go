package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/invincible-jha/aumai-jaldrishti/internal/alerts"
	"github.com/invincible-jha/aumai-jaldrishti/internal/api"
	"github.com/invincible-jha/aumai-jaldrishti/internal/config"
	"github.com/invincible-jha/aumai-jaldrishti/internal/coverage"
	"github.com/invincible-jha/aumai-jaldrishti/internal/groundwater"
	"github.com/invincible-jha/aumai-jaldrishti/internal/ingest"
	"github.com/invincible-jha/aumai-jaldrishti/internal/logging"
	"github.com/invincible-jha/aumai-jaldrishti/internal/rainfall"
	"github.com/invincible-jha/aumai-jaldrishti/internal/repository"
	"github.com/invincible-jha/aumai-jaldrishti/internal/sources"
	"github.com/invincible-jha/aumai-jaldrishti/internal/stream"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sourceRegistry := sources.NewRegistry()
	coverageTracker := coverage.NewTracker()
	groundwaterMonitor := groundwater.NewMonitor()
	rainfallAnalyzer := rainfall.NewAnalyzer()
	alertEngine := alerts.NewEngine()

	broadcaster := stream.NewBroadcaster()

	mgr := ingest.NewManager(cfg, sourceRegistry, coverageTracker, groundwaterMonitor, rainfallAnalyzer, alertEngine, db, broadcaster)
	mgr.Start(ctx)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimitRPS))

	handler := api.NewHandler(cfg, sourceRegistry, coverageTracker, groundwaterMonitor, rainfallAnalyzer, mgr, db, broadcaster)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	mgr.Stop()
	broadcaster.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
