package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trivialab/trivia-backend/internal/model"
	"github.com/trivialab/trivia-backend/internal/pagination"
	"github.com/trivialab/trivia-backend/internal/response"
	"github.com/trivialab/trivia-backend/internal/service"
	"github.com/trivialab/trivia-backend/internal/validator"
)

// QuestionHandler handles question listing, search, creation and removal.
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
	pageSize        int
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService, pageSize int) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		pageSize:        pageSize,
	}
}

// ListQuestions godoc
// GET /questions?page=N
// Lists all questions, paged, with the category map for the sidebar.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questionService.ListAll(ctx)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	page, _ := pagination.Page(questions, pageParam(c), h.pageSize)
	if len(page) == 0 {
		response.Fail(c, http.StatusNotFound)
		return
	}

	categories, err := h.categoryService.AllAsMap(ctx)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.OK(c, gin.H{
		"questions":        page,
		"total_questions":  len(questions),
		"current_category": nil,
		"categories":       categories,
	})
}

// ListByCategory godoc
// GET /categories/:id/questions?page=N
// Lists the questions of one category, annotated with its display name.
// An unknown category is a 404, never a generic server error.
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound)
		return
	}

	category, err := h.categoryService.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.Fail(c, http.StatusNotFound)
		} else {
			response.Fail(c, http.StatusInternalServerError)
		}
		return
	}

	selection, err := h.questionService.ListByCategory(ctx, id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	total, err := h.questionService.Count(ctx)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	page, _ := pagination.Page(selection, pageParam(c), h.pageSize)
	response.OK(c, gin.H{
		"questions":        page,
		"total_questions":  total,
		"current_category": category.Type,
	})
}

// CreateQuestion godoc
// POST /questions
// Adds a question. Missing or malformed fields are rejected at the
// boundary; an unresolvable category reference is the store's verdict.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusUnprocessableEntity, fields)
		return
	}

	question := &model.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}

	if err := h.questionService.Create(ctx, question); err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			response.Fail(c, http.StatusUnprocessableEntity)
		} else {
			response.Fail(c, http.StatusInternalServerError)
		}
		return
	}

	page, total, err := h.refreshedPage(c)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.OK(c, gin.H{
		"created":         question.ID,
		"questions":       page,
		"total_questions": total,
	})
}

// DeleteQuestion godoc
// DELETE /questions/:id
// Removes a question by id. A second delete of the same id is a 404, not
// a success.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound)
		return
	}

	if err := h.questionService.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			response.Fail(c, http.StatusNotFound)
		} else {
			response.Fail(c, http.StatusInternalServerError)
		}
		return
	}

	page, total, err := h.refreshedPage(c)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	response.OK(c, gin.H{
		"deleted":         id,
		"questions":       page,
		"total_questions": total,
	})
}

// SearchQuestions godoc
// POST /search
// Case-insensitive substring search over question text. Zero hits is a
// valid empty success, not an error; error codes are reserved for
// malformed input.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	var req model.SearchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusUnprocessableEntity, fields)
		return
	}

	matches, err := h.questionService.Search(ctx, req.SearchTerm)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	total, err := h.questionService.Count(ctx)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	page, _ := pagination.Page(matches, pageParam(c), h.pageSize)
	response.OK(c, gin.H{
		"questions":        page,
		"total_questions":  total,
		"current_category": nil,
	})
}

// refreshedPage returns the requested window of the full question list
// plus the fresh total, for the list refresh that rides along with create
// and delete responses.
func (h *QuestionHandler) refreshedPage(c *gin.Context) ([]model.Question, int, error) {
	ctx := c.Request.Context()

	questions, err := h.questionService.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	page, _ := pagination.Page(questions, pageParam(c), h.pageSize)
	return page, len(questions), nil
}

// pageParam reads the 1-based page query parameter, defaulting to 1 for
// absent or non-positive values.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
