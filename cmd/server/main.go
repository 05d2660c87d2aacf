package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"fanfic-blog-service/internal/config"
	delivery_http "fanfic-blog-service/internal/delivery/http"
	metrics_server "fanfic-blog-service/internal/delivery/metrics"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/metrics"
	category_postgres "fanfic-blog-service/internal/repository/category/postgres"
	post_postgres "fanfic-blog-service/internal/repository/post/postgres"
	"fanfic-blog-service/internal/repository/postgres"
	tag_postgres "fanfic-blog-service/internal/repository/tag/postgres"
	user_postgres "fanfic-blog-service/internal/repository/user/postgres"
	category_service "fanfic-blog-service/internal/service/category"
	post_service "fanfic-blog-service/internal/service/post"
	tag_service "fanfic-blog-service/internal/service/tag"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(cfg.Database.MigrationsPath, dsn); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	unitOfWork := postgres.NewPostgresUOW(pool, log)
	postRepo := post_postgres.NewPostRepository(pool, log)
	categoryRepo := category_postgres.NewCategoryRepository(pool, log)
	tagRepo := tag_postgres.NewTagRepository(pool, log)
	userRepo := user_postgres.NewUserRepository(pool, log)

	postService := post_service.NewPostService(postRepo, categoryRepo, tagRepo, userRepo, unitOfWork, log)
	categoryService := category_service.NewCategoryService(categoryRepo, unitOfWork, log)
	tagService := tag_service.NewTagService(tagRepo, unitOfWork, log)

	handler := delivery_http.NewHandler(postService, categoryService, tagService, userRepo, log)
	httpServer := delivery_http.NewServer(handler, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	metrics.SetServiceHealth(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(migrationsPath, dsn string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
