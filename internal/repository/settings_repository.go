package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository интерфейс для работы с единственными записями настроек:
// конфигурацией Telegram и настройками интерфейса
type SettingsRepository interface {
	GetTelegram() (*models.TelegramSettings, error)
	SaveTelegram(settings *models.TelegramSettings) error
	GetApp() (*models.AppSettings, error)
	SaveApp(settings *models.AppSettings) error
}

// settingsRepository реализация репозитория настроек
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository создает новый репозиторий настроек
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetTelegram получает конфигурацию Telegram; если записи нет,
// возвращает настройки по умолчанию
func (r *settingsRepository) GetTelegram() (*models.TelegramSettings, error) {
	var settings models.TelegramSettings
	err := r.db.First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultTelegramSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveTelegram перезаписывает конфигурацию Telegram
func (r *settingsRepository) SaveTelegram(settings *models.TelegramSettings) error {
	settings.ID = 1
	return r.db.Save(settings).Error
}

// GetApp получает настройки интерфейса; если записи нет,
// возвращает значения по умолчанию
func (r *settingsRepository) GetApp() (*models.AppSettings, error) {
	var settings models.AppSettings
	err := r.db.First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.AppSettings{ID: 1, Theme: "light", Language: "ru"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveApp перезаписывает настройки интерфейса
func (r *settingsRepository) SaveApp(settings *models.AppSettings) error {
	settings.ID = 1
	return r.db.Save(settings).Error
}
