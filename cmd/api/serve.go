package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/handlers"
	"alfredoptarigan/interview-coach/internal/logger"
	"alfredoptarigan/interview-coach/internal/repositories"
	"alfredoptarigan/interview-coach/internal/services"
)

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return err
	}
	log.Info("config loaded", zap.String("env", cfg.Server.Env), zap.String("session_store", cfg.Session.Store))

	sessions, err := newSessionRepository(cfg, log)
	if err != nil {
		return err
	}

	model, err := services.NewGeminiService(ctx, services.GeminiOptions{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		BaseURL:     cfg.Gemini.BaseURL,
	}, log)
	if err != nil {
		log.Error("failed to initialize Gemini", zap.Error(err))
		return err
	}
	log.Info("gemini initialized", zap.String("model", cfg.Gemini.Model))

	interview := services.NewInterviewService(
		sessions,
		services.NewQuestionGenerator(model, log),
		services.NewAnswerEvaluator(model, log),
		log,
	)

	app := handlers.NewApp(handlers.AppConfig{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		AccessLog:    true,
	}, handlers.Handlers{
		Start:   handlers.NewStartHandler(interview, services.NewDocumentParserService(), cfg.Storage.MaxFileSize),
		Answers: handlers.NewAnswersHandler(interview),
		Session: handlers.NewSessionHandler(interview),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Error("failed to start server", zap.Error(err))
		return err
	}

	return nil
}

func newSessionRepository(cfg *config.Config, log *zap.Logger) (repositories.SessionRepository, error) {
	if cfg.Session.Store != config.SessionStorePostgres {
		log.Info("using in-memory session store")
		return repositories.NewMemorySessionRepository(), nil
	}

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Error("failed to initialize database", zap.Error(err))
		return nil, err
	}

	return repositories.NewSessionRepository(db), nil
}
