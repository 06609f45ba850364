package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edasenturkk/term-project-backend/services"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// pathID parses the :id path parameter. Identifiers start at 1, so zero
// and negative values are rejected before they can wrap through uint.
func pathID(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + what + " id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the domain error taxonomy to HTTP statuses:
// validation 400, eligibility 403, not found 404, anything else 500.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	var ee *services.EligibilityError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Msg})
	case errors.As(err, &ee):
		body := gin.H{"message": ee.Error()}
		if ee.Threshold > 0 {
			body["requiredPlaytime"] = ee.Threshold
		}
		c.JSON(http.StatusForbidden, body)
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		utils.Log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		}).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "unexpected error"})
	}
}
