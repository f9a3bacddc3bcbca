package handlers

import (
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/storage"

	"github.com/gin-gonic/gin"
)

// AuthHandler представляет обработчик авторизации и профиля
type AuthHandler struct {
	authService *services.AuthService
	storage     *storage.Storage
}

// NewAuthHandler создает новый обработчик авторизации
func NewAuthHandler(authService *services.AuthService, fileStorage *storage.Storage) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		storage:     fileStorage,
	}
}

// LoginRequest представляет запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginAsRequest представляет запрос демо-входа по роли
type LoginAsRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// Login авторизует пользователя по email
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// LoginAs выполняет демо-вход под первым одобренным пользователем роли
func (h *AuthHandler) LoginAs(c *gin.Context) {
	var req LoginAsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	result, err := h.authService.LoginAs(req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProfile получает профиль текущего пользователя
func (h *AuthHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// UpdateProfile обновляет профиль текущего пользователя
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var update services.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(currentUser(c).ID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadAvatar загружает аватар пользователя
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	header, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file required"})
		return
	}

	user := currentUser(c)
	path, err := h.storage.SaveAvatar(header, user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.authService.UpdateProfile(user.ID, services.ProfileUpdate{Avatar: &path})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ListUsers получает пользователей с фильтрами по роли и группе
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(models.Role(c.Query("role")), c.Query("group"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetAppSettings получает настройки интерфейса
func (h *AuthHandler) GetAppSettings(c *gin.Context) {
	settings, err := h.authService.GetAppSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// AppSettingsRequest представляет запрос изменения настроек интерфейса
type AppSettingsRequest struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// UpdateAppSettings сохраняет настройки интерфейса
func (h *AuthHandler) UpdateAppSettings(c *gin.Context) {
	var req AppSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.authService.UpdateAppSettings(req.Theme, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
