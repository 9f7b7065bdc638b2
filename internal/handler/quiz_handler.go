package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trivialab/trivia-backend/internal/model"
	"github.com/trivialab/trivia-backend/internal/response"
	"github.com/trivialab/trivia-backend/internal/service"
	"github.com/trivialab/trivia-backend/internal/validator"
)

// QuizHandler handles quiz draw requests.
type QuizHandler struct {
	quizService     *service.QuizService
	categoryService *service.CategoryService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService, categoryService *service.CategoryService) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		categoryService: categoryService,
	}
}

// Draw godoc
// POST /quizzes
// Picks one random question from the chosen category that is not in the
// client-held seen set. Exhaustion is a 200 with a null question; the
// client decides whether that ends the quiz.
func (h *QuizHandler) Draw(c *gin.Context) {
	ctx := c.Request.Context()

	var req model.QuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, fields)
		return
	}

	categoryID := req.QuizCategory.ID
	if categoryID != model.CategoryAll {
		if _, err := h.categoryService.Resolve(ctx, categoryID); err != nil {
			if errors.Is(err, service.ErrCategoryNotFound) {
				response.Fail(c, http.StatusNotFound)
			} else {
				response.Fail(c, http.StatusInternalServerError)
			}
			return
		}
	}

	question, err := h.quizService.Draw(ctx, categoryID, *req.PreviousQuestions)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	// question is nil when the pool is exhausted; it serializes as null.
	response.OK(c, gin.H{"question": question})
}
