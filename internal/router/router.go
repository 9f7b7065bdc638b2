package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/trivialab/trivia-backend/internal/config"
	"github.com/trivialab/trivia-backend/internal/handler"
	"github.com/trivialab/trivia-backend/internal/middleware"
	"github.com/trivialab/trivia-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Category *handler.CategoryHandler
	Question *handler.QuestionHandler
	Quiz     *handler.QuizHandler
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Mutating endpoints share a per-IP budget.
	writeLimiter := middleware.NewRateLimiter(cfg.WriteRateLimit, time.Minute)

	router.GET("/categories", handlers.Category.ListCategories)
	router.GET("/categories/:id/questions", handlers.Question.ListByCategory)
	router.GET("/questions", handlers.Question.ListQuestions)
	router.POST("/questions", writeLimiter.Middleware(), handlers.Question.CreateQuestion)
	router.DELETE("/questions/:id", writeLimiter.Middleware(), handlers.Question.DeleteQuestion)
	router.POST("/search", handlers.Question.SearchQuestions)
	router.POST("/quizzes", handlers.Quiz.Draw)

	// Unknown paths and methods answer in the same envelope as everything
	// else so clients can always rely on the error shape.
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound)
	})
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed)
	})

	return router
}
