package handlers

import (
	"net/http"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/services"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List - GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	if cache.IsRedisAvailable() {
		if cached, err := cache.GetCategories(); err == nil && cached != nil {
			utils.Log.Debug("Cache HIT: categories")
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	categories, err := h.categories.List()
	if err != nil {
		respondError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetCategories(categories)
	}
	c.JSON(http.StatusOK, categories)
}

// Create - POST /categories (admin)
func (h *CategoryHandler) Create(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	category, err := h.categories.Create(input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// Delete - DELETE /categories/:id (admin)
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "category")
	if !ok {
		return
	}

	if err := h.categories.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
