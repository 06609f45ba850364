package handlers

import (
	"net/http"
	"strconv"

	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/services"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users       *services.UserService
	projections *services.ProjectionService
	stats       *services.StatsService
}

func NewUserHandler(users *services.UserService, projections *services.ProjectionService, stats *services.StatsService) *UserHandler {
	return &UserHandler{users: users, projections: projections, stats: stats}
}

// GetStats - GET /users/stats
func (h *UserHandler) GetStats(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	stats, err := h.projections.Stats(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMostPlayed - GET /users/most-played
func (h *UserHandler) GetMostPlayed(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.projections.MostPlayed(user.ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetComments - GET /users/comments
func (h *UserHandler) GetComments(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	comments, err := h.projections.Comments(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// GetDashboard - GET /users/dashboard
func (h *UserHandler) GetDashboard(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	dashboard, err := h.projections.Dashboard(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetPage - GET /users/page
func (h *UserHandler) GetPage(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	page, err := h.projections.Page(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// List - GET /users (admin)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Update - PUT /users/:id (admin)
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	var input models.AdminUpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.AdminUpdate(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete - DELETE /users/:id (admin). The response reports how many
// dependent records the cleanup touched.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	result, err := h.users.DeleteUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted", "cleanup": result})
}

// GetPlatformStats - GET /admin/stats (admin)
func (h *UserHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.stats.Platform()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
