package handlers

import (
	"errors"
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError переводит ошибки доменного слоя в HTTP-статусы
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden), errors.Is(err, models.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyCompleted),
		errors.Is(err, models.ErrEntryConfirmed),
		errors.Is(err, models.ErrFileProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// currentUser возвращает пользователя, положенного в контекст middleware
func currentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}
