package services

import (
	"time"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"

	"github.com/google/uuid"
)

// NotificationService представляет сервис уведомлений и журнала действий
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
}

// NewNotificationService создает новый сервис уведомлений
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
	}
}

// ListByUser получает уведомления пользователя
func (s *NotificationService) ListByUser(userID uuid.UUID) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(userID)
}

// MarkRead помечает уведомление прочитанным
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	return s.notificationRepo.MarkRead(id)
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(userID)
}

// UnreadCount считает непрочитанные уведомления пользователя
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	return s.notificationRepo.UnreadCount(userID)
}

// Create создает уведомление
func (s *NotificationService) Create(notification *models.Notification) error {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	return s.notificationRepo.Create(notification)
}

// LogActivity добавляет запись в журнал действий
func (s *NotificationService) LogActivity(actor *models.User, action, details string, activityType models.ActivityType) error {
	return s.activityRepo.Create(&models.ActivityLog{
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
		Type:      activityType,
	})
}

// ListActivity получает последние записи журнала
func (s *NotificationService) ListActivity(limit int) ([]models.ActivityLog, error) {
	return s.activityRepo.List(limit)
}

// ListActivityByType получает последние записи журнала по категории
func (s *NotificationService) ListActivityByType(activityType models.ActivityType, limit int) ([]models.ActivityLog, error) {
	return s.activityRepo.ListByType(activityType, limit)
}
