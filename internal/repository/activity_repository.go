package repository

import (
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository интерфейс для работы с журналом действий.
// Журнал только пополняется, записи не изменяются и не удаляются.
type ActivityRepository interface {
	Create(entry *models.ActivityLog) error
	List(limit int) ([]models.ActivityLog, error)
	ListByType(activityType models.ActivityType, limit int) ([]models.ActivityLog, error)
}

// activityRepository реализация репозитория журнала
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository создает новый репозиторий журнала действий
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create добавляет запись в журнал
func (r *activityRepository) Create(entry *models.ActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.Create(entry).Error
}

// List получает последние записи журнала
func (r *activityRepository) List(limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	q := r.db.Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}

// ListByType получает последние записи указанной категории
func (r *activityRepository) ListByType(activityType models.ActivityType, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	q := r.db.Where("type = ?", activityType).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}
