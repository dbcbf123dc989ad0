package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"careerprep/internal/adapter"
	"careerprep/internal/adapter/sentiment"
	"careerprep/internal/adapter/speech"
	"careerprep/internal/cache"
	"careerprep/internal/career"
	"careerprep/internal/config"
	"careerprep/internal/coverletter"
	"careerprep/internal/database"
	"careerprep/internal/domain"
	"careerprep/internal/handler"
	"careerprep/internal/logger"
	"careerprep/internal/middleware"
	"careerprep/internal/question"
	"careerprep/internal/repository"
	"careerprep/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// requestLogger logs each request with method, path, status and latency.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Get().Info("http request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}

func newHistoryRepository(cfg *config.Config) (domain.HistoryRepository, error) {
	switch cfg.History.Backend {
	case "sqlite":
		db, err := database.NewSQLXSqliteDB(cfg.History.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return repository.NewSQLiteHistoryRepository(db), nil
	case "file", "":
		return repository.NewFileHistoryRepository(cfg.History.Dir)
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.History.Backend)
	}
}

func newSentimentAnalyzer(cfg *config.Config) (domain.SentimentAnalyzer, error) {
	switch cfg.Sentiment.Source {
	case "ollama":
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.Sentiment.ServerURL),
			ollama.WithModel(cfg.Sentiment.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: 20 * time.Second}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ollama sentiment client: %w", err)
		}
		return sentiment.NewOllamaAnalyzer(llm), nil
	case "lexicon", "":
		return sentiment.NewLexiconAnalyzer(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment source %q", cfg.Sentiment.Source)
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting careerprep API server",
		zap.Int("port", cfg.Server.Port),
		zap.String("history_backend", cfg.History.Backend),
		zap.String("sentiment_source", cfg.Sentiment.Source),
	)

	bank, err := question.NewBank()
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.Error(err))
	}
	selector := question.NewSelector(bank, rand.New(rand.NewSource(time.Now().UnixNano())))

	historyRepo, err := newHistoryRepository(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize history repository", zap.Error(err))
	}

	var answerCache domain.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		answerCache = adapter.NewRedisCacheAdapter(redisClient)
	}
	answerCacheService := service.NewAnswerCacheService(answerCache, cfg.Interview.AnswerCacheTTL)

	var transcriber domain.Transcriber
	if cfg.Speech.APIKey != "" {
		transcriber = speech.NewGoogleTranscriber(cfg.Speech, nil)
	} else {
		appLogger.Warn("No speech API key configured, audio answers disabled")
	}

	sentimentAnalyzer, err := newSentimentAnalyzer(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize sentiment analyzer", zap.Error(err))
	}

	recommender, err := career.NewRecommender()
	if err != nil {
		appLogger.Fatal("Failed to load career paths", zap.Error(err))
	}
	generator := coverletter.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	interviewService := service.NewInterviewService(
		bank,
		selector,
		historyRepo,
		transcriber,
		sentimentAnalyzer,
		answerCacheService,
	)

	interviewHandler := handler.NewInterviewHandler(interviewService)
	careerHandler := handler.NewCareerHandler(recommender, generator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(recover.New())

	api := app.Group("/api")

	interview := api.Group("/interview")
	interview.Post("/start", interviewHandler.StartInterview)
	interview.Post("/answer", interviewHandler.SubmitAnswer)
	interview.Post("/answer/audio", interviewHandler.SubmitAudioAnswer)
	interview.Get("/history", interviewHandler.GetHistory)

	resume := api.Group("/resume")
	resume.Post("/analyze", careerHandler.AnalyzeResume)
	resume.Post("/match", careerHandler.MatchResume)
	resume.Post("/suggestions", careerHandler.ResumeSuggestions)

	api.Post("/career/recommendations", careerHandler.Recommendations)
	api.Post("/cover-letter", careerHandler.GenerateCoverLetter)

	go func() {
		listenAddr := ":" + strconv.Itoa(cfg.Server.Port)
		appLogger.Info("Server listening", zap.String("address", listenAddr))
		if err := app.Listen(listenAddr); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
