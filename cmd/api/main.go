package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kodig3618/Job-Tracker/config"
	v1 "github.com/kodig3618/Job-Tracker/internal/delivery/http/v1"
	"github.com/kodig3618/Job-Tracker/internal/repository/kvstore"
	"github.com/kodig3618/Job-Tracker/internal/usecase"
	"github.com/kodig3618/Job-Tracker/pkg/database"
	"github.com/kodig3618/Job-Tracker/pkg/logger"
	"github.com/kodig3618/Job-Tracker/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job tracker backend", "port", cfg.Port)

	// 3. Setup Record Store
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Log.Error("Failed to open database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer db.Close()

	store := kvstore.NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		logger.Log.Error("Failed to initialize record store", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	userRepo := kvstore.NewUserRepository(store)

	// 5. Setup UseCases
	validate := validator.New()
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(userRepo, validate)
	queryUC := usecase.NewQueryUsecase(userRepo, usecase.QueryConfig{
		DeadlineHorizonDays: cfg.DeadlineHorizonDays,
		DeadlineUrgentDays:  cfg.DeadlineUrgentDays,
		DeadlineLimit:       cfg.DeadlineLimit,
		ActivityLimit:       cfg.RecentActivityLimit,
	})

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:  authUC,
		JobUC:   jobUC,
		QueryUC: queryUC,
		Tokens:  tokens,
		Config:  cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
