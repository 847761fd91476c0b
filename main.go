package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"waste-impact-service/cache"
	"waste-impact-service/config"
	"waste-impact-service/database"
	"waste-impact-service/handlers"
	"waste-impact-service/metrics"
	"waste-impact-service/rabbitmq"
	"waste-impact-service/service"
)

const (
	EndPointHealth       = "/health"
	EndPointImpactReport = "/reports/impact"
	EndPointPublicImpact = "/public/impact"
	EndPointHotspotMap   = "/map/hotspots"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Register Prometheus metrics
	metrics.Register()

	// Initialize database
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureWasteReportsTable(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	cancel()

	// Initialize snapshot cache; the service still works without it.
	snapshotCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		log.Printf("Warning: snapshot cache unavailable: %v", err)
		snapshotCache = nil
	} else {
		defer snapshotCache.Close()
	}

	// Initialize service
	impactService := service.NewService(db, cfg.PublicSampleLimit)

	// Initialize handlers
	impactHandler := handlers.NewImpactHandler(impactService, db, snapshotCache, cfg)

	// Subscribe to report events to invalidate cached snapshots.
	if snapshotCache != nil {
		subscriber, err := rabbitmq.NewSubscriber(cfg.AMQPURL, cfg.AMQPQueueName)
		if err != nil {
			log.Printf("Warning: report-event subscriber unavailable: %v", err)
		} else {
			defer subscriber.Close()
			subscriber.Start(func(msg *rabbitmq.Message) error {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return snapshotCache.InvalidateAll(ctx)
			})
		}
	}

	// Setup HTTP server
	router := gin.Default()

	router.GET(EndPointHealth, impactHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV3 := router.Group("/api/v3")
	{
		apiV3.GET(EndPointHealth, impactHandler.HealthCheck)
		apiV3.POST(EndPointImpactReport, impactHandler.GenerateImpactReport)
		apiV3.GET(EndPointPublicImpact, impactHandler.PublicImpactReport)
		apiV3.GET(EndPointHotspotMap, impactHandler.HotspotMap)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
