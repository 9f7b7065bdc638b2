package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trivialab/trivia-backend/internal/response"
	"github.com/trivialab/trivia-backend/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories godoc
// GET /categories
// Returns every category as an id-to-display-name map.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.AllAsMap(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	// An unseeded store has nothing to serve; that is a data problem, not
	// a routing one.
	if len(categories) == 0 {
		response.Fail(c, http.StatusUnprocessableEntity)
		return
	}

	response.OK(c, gin.H{"categories": categories})
}
