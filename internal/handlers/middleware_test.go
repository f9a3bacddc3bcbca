package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuth(t *testing.T) (*gin.Engine, *services.AuthService, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.AppSettings{}, &models.TelegramSettings{}))

	student := &models.User{
		ID:       uuid.New(),
		Name:     "Иванов Алексей",
		Role:     models.RoleStudent,
		Group:    "ИС-922",
		Email:    "ivanov@college.ru",
		Approved: true,
	}
	require.NoError(t, db.Create(student).Error)

	authService := services.NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSettingsRepository(db),
		"test-secret",
		time.Hour,
	)

	router := gin.New()
	protected := router.Group("", AuthMiddleware(authService))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, currentUser(c))
	})
	teacherOnly := protected.Group("", RequireRoles(models.RoleTeacher))
	teacherOnly.GET("/teacher", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, authService, student
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router, _, _ := setupAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router, _, _ := setupAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router, authService, _ := setupAuth(t)

	result, err := authService.Login("ivanov@college.ru", "123456")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ivanov@college.ru")
}

func TestRequireRolesBlocksWrongRole(t *testing.T) {
	router, authService, _ := setupAuth(t)

	result, err := authService.Login("ivanov@college.ru", "123456")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teacher", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
