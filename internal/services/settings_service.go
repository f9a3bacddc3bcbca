package services

import (
	"fmt"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
)

// SettingsService представляет сервис конфигурации Telegram-уведомлений
// и служебных операций с данными
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	resetData    func() error
}

// NewSettingsService создает новый сервис настроек. resetData — операция
// полной очистки хранилища с восстановлением набора данных по умолчанию.
func NewSettingsService(settingsRepo repository.SettingsRepository, resetData func() error) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, resetData: resetData}
}

// GetTelegram получает конфигурацию Telegram
func (s *SettingsService) GetTelegram() (*models.TelegramSettings, error) {
	return s.settingsRepo.GetTelegram()
}

// TelegramUpdate типизированный частичный апдейт конфигурации Telegram
type TelegramUpdate struct {
	Enabled       *bool                       `json:"enabled,omitempty"`
	BotToken      *string                     `json:"bot_token,omitempty"`
	ChatID        *string                     `json:"chat_id,omitempty"`
	WebhookURL    *string                     `json:"webhook_url,omitempty"`
	Notifications *models.NotificationToggles `json:"notifications,omitempty"`
}

// UpdateTelegram сохраняет конфигурацию Telegram (единственная запись,
// перезаписывается на месте)
func (s *SettingsService) UpdateTelegram(update TelegramUpdate) (*models.TelegramSettings, error) {
	settings, err := s.settingsRepo.GetTelegram()
	if err != nil {
		return nil, err
	}

	if update.Enabled != nil {
		settings.Enabled = *update.Enabled
	}
	if update.BotToken != nil {
		settings.BotToken = *update.BotToken
	}
	if update.ChatID != nil {
		settings.ChatID = *update.ChatID
	}
	if update.WebhookURL != nil {
		settings.WebhookURL = *update.WebhookURL
	}
	if update.Notifications != nil {
		settings.Notifications = *update.Notifications
	}

	if err := s.settingsRepo.SaveTelegram(settings); err != nil {
		return nil, fmt.Errorf("failed to save telegram settings: %w", err)
	}
	return settings, nil
}

// ResetAllData безусловно удаляет все данные и восстанавливает набор
// по умолчанию. Механизм аварийного сброса, а не путь миграции.
func (s *SettingsService) ResetAllData() error {
	return s.resetData()
}
