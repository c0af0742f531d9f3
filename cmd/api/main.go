package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/handlers"
	"github.com/justsurfingit/jobboard/internal/logger"
	"github.com/justsurfingit/jobboard/internal/records"
	"github.com/justsurfingit/jobboard/internal/services"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside development)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Debug("No .env file loaded", zap.Error(envErr))
	}

	// 2. Record backend
	client, err := newRecordClient(cfg, log)
	if err != nil {
		log.Fatal("Failed to set up record backend", zap.Error(err))
	}

	// 3. Services
	ctx := context.Background()
	llmService, err := services.NewLLMService(ctx, cfg.LLM, log)
	if err != nil {
		log.Fatal("Failed to create LLM service", zap.Error(err))
	}
	svc := handlers.NewServices(client, llmService, log, cfg.App.CurrentUserID)

	// 4. Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(svc, handlers.RouterConfig{CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins}, log)

	log.Info("Server starting",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("records_backend", cfg.Records.Backend),
	)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("Server failed to start", zap.Error(err))
	}
}

func newRecordClient(cfg *config.Config, log *zap.Logger) (records.Client, error) {
	if cfg.Records.Backend == config.BackendLocal {
		db, err := database.Connect(cfg.Database, log)
		if err != nil {
			return nil, err
		}
		return database.NewRecordStore(db)
	}
	return records.NewRemote(records.RemoteConfig{
		BaseURL:    cfg.Records.BaseURL,
		ProjectID:  cfg.Records.ProjectID,
		PublicKey:  cfg.Records.PublicKey,
		Timeout:    cfg.Records.Timeout,
		RetryCount: cfg.Records.RetryCount,
	}), nil
}
