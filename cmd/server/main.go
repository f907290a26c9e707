package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mental-health-predictor/internal/adapters/primary/http/handlers"
	"mental-health-predictor/internal/adapters/primary/http/middleware"
	"mental-health-predictor/internal/adapters/secondary/filesystem"
	"mental-health-predictor/internal/adapters/secondary/kubernetes"
	"mental-health-predictor/internal/adapters/secondary/postgres"
	"mental-health-predictor/internal/adapters/secondary/textmodel"
	"mental-health-predictor/internal/config"
	"mental-health-predictor/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// A load failure does not stop the server: every view renders the
	// error panel instead of the form.
	predictionSvc, loadErr := loadArtifacts(cfg)
	if loadErr != nil {
		log.WithError(loadErr).Error("artifact load failed, serving error view")
	}

	h := handlers.New(predictionSvc, loadErr)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	h.RegisterPages(router)
	h.RegisterRoutes(router.Group("/api/v1"))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func loadArtifacts(cfg *config.Config) (*services.PredictionService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var loader *services.ArtifactLoader
	decoder := textmodel.NewDecoder()

	switch cfg.Artifacts.Source {
	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("create db pool: %w", err)
		}
		// Artifacts are read once; the pool is not needed after loading.
		defer pool.Close()
		loader = services.NewArtifactLoader(postgres.NewArtifactRepository(pool), decoder, cfg.Artifacts.Labels)

	case config.SourceConfigMap:
		source, err := kubernetes.NewConfigMapSource(&cfg.Kubernetes)
		if err != nil {
			return nil, err
		}
		loader = services.NewArtifactLoader(source, decoder, cfg.Artifacts.Labels)

	default:
		loader = services.NewArtifactLoader(filesystem.NewFileSource(cfg.Artifacts.Dir), decoder, cfg.Artifacts.Labels)
	}

	log.WithField("source", cfg.Artifacts.Source).Info("loading artifacts")
	return loader.Load(ctx, cfg.Artifacts.ModelPath, cfg.Artifacts.VectorizerPath)
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
