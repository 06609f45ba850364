package handlers

import (
	"net/http"
	"strconv"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/services"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	games    *services.GameService
	playtime *services.PlaytimeService
	reviews  *services.ReviewService
}

func NewProductHandler(games *services.GameService, playtime *services.PlaytimeService, reviews *services.ReviewService) *ProductHandler {
	return &ProductHandler{games: games, playtime: playtime, reviews: reviews}
}

// List - GET /products with optional ?q=, ?category=, ?page=, ?pageSize=
func (h *ProductHandler) List(c *gin.Context) {
	query := services.GameListQuery{
		Search:   c.Query("q"),
		Category: c.Query("category"),
	}
	query.Page, _ = strconv.Atoi(c.Query("page"))
	query.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

	// Only the unfiltered first page is cached.
	cacheable := query.Search == "" && query.Category == "" && query.Page <= 1 && query.PageSize == 0
	if cacheable && cache.IsRedisAvailable() {
		if cached, err := cache.GetGames(); err == nil && cached != nil {
			utils.Log.Debug("Cache HIT: products")
			c.JSON(http.StatusOK, cached)
			return
		}
		utils.Log.Debug("Cache MISS: products")
	}

	result, err := h.games.List(query)
	if err != nil {
		respondError(c, err)
		return
	}

	if cacheable && cache.IsRedisAvailable() {
		cache.SetGames(result)
	}
	c.JSON(http.StatusOK, result)
}

// ListDetailed - GET /products/detailed
func (h *ProductHandler) ListDetailed(c *gin.Context) {
	details, err := h.games.ListDetailed()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Get - GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}

	if cache.IsRedisAvailable() {
		if cached, err := cache.GetGame(id); err == nil && cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	game, err := h.games.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetGame(id, game)
	}
	c.JSON(http.StatusOK, game)
}

// GetComments - GET /products/:id/comments
func (h *ProductHandler) GetComments(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}

	if cache.IsRedisAvailable() {
		if cached, err := cache.GetReviews(id); err == nil && cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	reviews, err := h.reviews.GameComments(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetReviews(id, reviews)
	}
	c.JSON(http.StatusOK, reviews)
}

// RecordPlay - POST /products/:id/play with {"time": minutes}.
// Responds with the cumulative minutes; the rating catches up shortly.
func (h *ProductHandler) RecordPlay(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	user := c.MustGet("user").(models.User)

	var input models.RecordPlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	total, err := h.playtime.RecordPlay(user.ID, id, input.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gameId": id, "totalMinutes": total})
}

// CreateReview - POST /products/:id/reviews. 201 on a new review, 200
// when an existing one was amended.
func (h *ProductHandler) CreateReview(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	user := c.MustGet("user").(models.User)

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	review, created, err := h.reviews.UpsertReview(id, user.ID, user.Name, input)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, review)
}

// Create - POST /products (admin)
func (h *ProductHandler) Create(c *gin.Context) {
	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	game, err := h.games.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// Update - PUT /products/:id (admin)
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}

	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	game, err := h.games.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Delete - DELETE /products/:id (admin). The response reports how many
// ledger rows the cleanup removed.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}

	result, err := h.games.DeleteGame(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game deleted", "cleanup": result})
}
