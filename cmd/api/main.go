package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizgrade/internal/adapter"
	"quizgrade/internal/adapter/feedback"
	"quizgrade/internal/cache"
	"quizgrade/internal/config"
	"quizgrade/internal/database"
	"quizgrade/internal/domain"
	"quizgrade/internal/handler"
	"quizgrade/internal/logger"
	"quizgrade/internal/middleware"
	"quizgrade/internal/repository"
	"quizgrade/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	paperRepo := repository.NewPaperDatabaseAdapter(db)
	submissionRepo := repository.NewSubmissionDatabaseAdapter(db)

	var feedbackGen domain.FeedbackGenerator
	if cfg.Feedback.ServerURL != "" {
		feedbackGen, err = feedback.NewOllamaFeedbackGenerator(cfg.Feedback.ServerURL, cfg.Feedback.Model)
		if err != nil {
			// Reports still work without tips.
			log.Warn("feedback generator unavailable", zap.Error(err))
			feedbackGen = nil
		}
	}

	authService := service.NewAuthService(cfg.JWT)
	draftService := service.NewDraftService(cacheAdapter, cfg.Redis.DraftTTL)
	paperService := service.NewPaperService(paperRepo, submissionRepo, draftService, feedbackGen)

	sessionHandler := handler.NewSessionHandler(authService)
	paperHandler := handler.NewPaperHandler(paperService, draftService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger())

	protected := middleware.Protected(authService)
	admin := middleware.AdminOnly(cfg.AdminKey)

	api := app.Group("/api")
	api.Post("/sessions", sessionHandler.CreateSession)
	api.Get("/papers/:id", paperHandler.GetPaper)

	api.Put("/papers/:id/draft", protected, paperHandler.SaveDraft)
	api.Get("/papers/:id/draft", protected, paperHandler.GetDraft)
	api.Post("/papers/:id/grade", protected, paperHandler.Grade)
	api.Get("/submissions/:id/report", protected, paperHandler.GetReport)

	api.Post("/papers", admin, paperHandler.CreatePaper)
	api.Delete("/papers/:id", admin, paperHandler.DeletePaper)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Get().Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
