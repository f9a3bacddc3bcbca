package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType определяет типы уведомлений
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification представляет уведомление во входящих пользователя
type Notification struct {
	ID        uuid.UUID        `json:"id" gorm:"type:text;primary_key"`
	UserID    uuid.UUID        `json:"user_id" gorm:"type:text;not null;index"`
	Title     string           `json:"title" gorm:"not null"`
	Message   string           `json:"message" gorm:"not null"`
	Type      NotificationType `json:"type" gorm:"type:varchar(10);default:'info'"`
	Read      bool             `json:"read" gorm:"default:false"`
	Link      string           `json:"link,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// ActivityType определяет категории записей журнала действий
type ActivityType string

const (
	ActivityDiary    ActivityType = "diary"
	ActivityFile     ActivityType = "file"
	ActivityTest     ActivityType = "test"
	ActivityComment  ActivityType = "comment"
	ActivitySystem   ActivityType = "system"
	ActivityGrade    ActivityType = "grade"
	ActivityApproval ActivityType = "approval"
)

// ActivityLog представляет запись глобального журнала действий.
// Записи только добавляются, изменение и удаление не предусмотрены.
type ActivityLog struct {
	ID        uuid.UUID    `json:"id" gorm:"type:text;primary_key"`
	UserID    uuid.UUID    `json:"user_id" gorm:"type:text"`
	UserName  string       `json:"user_name"`
	Action    string       `json:"action" gorm:"not null"`
	Details   string       `json:"details"`
	Timestamp time.Time    `json:"timestamp"`
	Type      ActivityType `json:"type" gorm:"type:varchar(10)"`
}

// NotificationToggles включает/выключает Telegram-уведомления по типам событий
type NotificationToggles struct {
	NewEntry            bool `json:"new_entry"`
	ConfirmedHours      bool `json:"confirmed_hours"`
	NewComment          bool `json:"new_comment"`
	TestAssigned        bool `json:"test_assigned"`
	TestCompleted       bool `json:"test_completed"`
	FileUploaded        bool `json:"file_uploaded"`
	GradeAdded          bool `json:"grade_added"`
	RegistrationRequest bool `json:"registration_request"`
}

// Value сериализует настройки в JSON
func (t NotificationToggles) Value() (driver.Value, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan десериализует настройки из JSON
func (t *NotificationToggles) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}
	return fmt.Errorf("unsupported type for NotificationToggles: %T", value)
}

// TelegramSettings представляет глобальную конфигурацию Telegram-уведомлений.
// Единственная запись, перезаписывается на месте.
type TelegramSettings struct {
	ID            uint                `json:"-" gorm:"primary_key"`
	Enabled       bool                `json:"enabled"`
	BotToken      string              `json:"bot_token"`
	ChatID        string              `json:"chat_id"`
	WebhookURL    string              `json:"webhook_url"`
	Notifications NotificationToggles `json:"notifications" gorm:"type:text"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// DefaultTelegramSettings возвращает настройки по умолчанию: интеграция
// выключена, все типы событий включены
func DefaultTelegramSettings() TelegramSettings {
	return TelegramSettings{
		ID: 1,
		Notifications: NotificationToggles{
			NewEntry:            true,
			ConfirmedHours:      true,
			NewComment:          true,
			TestAssigned:        true,
			TestCompleted:       true,
			FileUploaded:        true,
			GradeAdded:          true,
			RegistrationRequest: true,
		},
	}
}

// AppSettings представляет настройки интерфейса (тема и язык).
// Единственная запись.
type AppSettings struct {
	ID        uint      `json:"-" gorm:"primary_key"`
	Theme     string    `json:"theme" gorm:"default:'light'"`   // light | dark
	Language  string    `json:"language" gorm:"default:'ru'"`   // ru | kz | en
	UpdatedAt time.Time `json:"updated_at"`
}
