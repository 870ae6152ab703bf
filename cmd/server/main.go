package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcity/trafficmap/internal/config"
	"github.com/smartcity/trafficmap/internal/delivery/http"
	"github.com/smartcity/trafficmap/internal/directions"
	"github.com/smartcity/trafficmap/internal/repository/jsonfile"
	"github.com/smartcity/trafficmap/internal/repository/postgres"
	"github.com/smartcity/trafficmap/internal/routing"
	"github.com/smartcity/trafficmap/internal/service"
)

func main() {
	// Configuration
	cfg := config.Load()

	// Storage: PostgreSQL when configured and reachable, JSON file otherwise
	var reportRepo service.ReportRepository
	if pool := connectDatabase(cfg.DatabaseURL); pool != nil {
		defer pool.Close()
		pgRepo := postgres.NewPostgresRepository(pool)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Printf("Warning: %v", err)
		}
		cancel()
		reportRepo = pgRepo
	} else {
		log.Printf("Storing reports in %s", cfg.ReportsFile)
		reportRepo = jsonfile.NewRepository(cfg.ReportsFile)
	}

	// Dependency Injection: Services
	trafficSvc := service.NewTrafficService()
	reportSvc := service.NewReportService(reportRepo)
	dashboardSvc := service.NewDashboardService(trafficSvc, reportSvc)
	routeSvc := routing.NewService(
		directions.NewRouter(cfg.DirectionsURL, cfg.DirectionsKey),
		routing.WithTimeout(cfg.RouteTimeout),
		routing.WithRegion(cfg.Region),
	)

	// Fiber App
	app := http.NewApp(true)
	http.SetupRoutes(app, http.NewHandler(dashboardSvc, reportSvc, routeSvc, reportRepo))

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

// connectDatabase returns a live pool, or nil when no database is usable
func connectDatabase(url string) *pgxpool.Pool {
	if url == "" {
		log.Println("DATABASE_URL not set")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		return nil
	}
	if err := pool.Ping(ctx); err != nil {
		log.Printf("Warning: Database unreachable: %v", err)
		pool.Close()
		return nil
	}
	log.Println("Connected to PostgreSQL")
	return pool
}
