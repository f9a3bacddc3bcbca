package handlers

import (
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegistrationHandler представляет обработчик заявок на регистрацию
type RegistrationHandler struct {
	regService *services.RegistrationService
}

// NewRegistrationHandler создает новый обработчик регистрации
func NewRegistrationHandler(regService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regService: regService}
}

// RegisterRequest представляет заявку на регистрацию
type RegisterRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role" binding:"required"`
	Group    string      `json:"group"`
}

// Submit создает заявку на регистрацию
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	reg, err := h.regService.Submit(services.SubmitInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Group:    req.Group,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// List получает заявки, ожидающие решения текущего пользователя
func (h *RegistrationHandler) List(c *gin.Context) {
	pending, err := h.regService.ListPendingFor(currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": pending})
}

// Approve одобряет заявку и создает пользователя
func (h *RegistrationHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}

	user, err := h.regService.Approve(id, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Reject отклоняет заявку
func (h *RegistrationHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}

	if err := h.regService.Reject(id, currentUser(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "registration rejected"})
}
