package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/trivialab/trivia-backend/internal/config"
	"github.com/trivialab/trivia-backend/internal/database"
	"github.com/trivialab/trivia-backend/internal/handler"
	"github.com/trivialab/trivia-backend/internal/logger"
	"github.com/trivialab/trivia-backend/internal/quiz"
	"github.com/trivialab/trivia-backend/internal/repository"
	"github.com/trivialab/trivia-backend/internal/router"
	"github.com/trivialab/trivia-backend/internal/service"
	"github.com/trivialab/trivia-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Int("page_size", cfg.QuestionsPerPage).
		Msg("Starting Trivia Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	questionRepo := repository.NewQuestionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	categoryCache := service.NewRedisCategoryCache(rdb, cfg.CategoryCacheTTL, log)
	categoryService := service.NewCategoryService(categoryRepo, categoryCache, log)
	questionService := service.NewQuestionService(questionRepo, log)
	quizService := service.NewQuizService(questionRepo, quiz.NewSelector(), log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Category: handler.NewCategoryHandler(categoryService),
		Question: handler.NewQuestionHandler(questionService, categoryService, cfg.QuestionsPerPage),
		Quiz:     handler.NewQuizHandler(quizService, categoryService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
