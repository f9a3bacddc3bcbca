package handlers

import (
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"

	"github.com/gin-gonic/gin"
)

// SettingsHandler представляет обработчик настроек Telegram, статистики
// и служебных операций
type SettingsHandler struct {
	settingsService *services.SettingsService
	statsService    *services.StatsService
}

// NewSettingsHandler создает новый обработчик настроек
func NewSettingsHandler(settingsService *services.SettingsService, statsService *services.StatsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		statsService:    statsService,
	}
}

// GetTelegram получает конфигурацию Telegram-уведомлений
func (h *SettingsHandler) GetTelegram(c *gin.Context) {
	settings, err := h.settingsService.GetTelegram()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateTelegram сохраняет конфигурацию Telegram-уведомлений
func (h *SettingsHandler) UpdateTelegram(c *gin.Context) {
	var update services.TelegramUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateTelegram(update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetStats получает сводную статистику для панели управления
func (h *SettingsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Reset удаляет все данные и восстанавливает набор по умолчанию
func (h *SettingsHandler) Reset(c *gin.Context) {
	if err := h.settingsService.ResetAllData(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data reset"})
}
