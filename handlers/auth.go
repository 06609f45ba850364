package handlers

import (
	"net/http"

	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/monitoring"
	"github.com/edasenturkk/term-project-backend/services"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users     *services.UserService
	jwtSecret string
}

func NewAuthHandler(users *services.UserService, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

// Register - POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, h.jwtSecret)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login - POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.Authenticate(input.Email, input.Password)
	if err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
		return
	}
	monitoring.AuthenticationAttempts.WithLabelValues("success").Inc()

	token, err := utils.GenerateToken(user.ID, h.jwtSecret)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GetProfile - GET /users/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	c.JSON(http.StatusOK, user)
}

// UpdateProfile - PUT /users/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var input models.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.users.UpdateProfile(user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
