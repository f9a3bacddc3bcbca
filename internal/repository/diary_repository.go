package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiaryRepository интерфейс для работы с записями дневника практики
type DiaryRepository interface {
	Create(entry *models.DiaryEntry) error
	GetByID(id uuid.UUID) (*models.DiaryEntry, error)
	Update(entry *models.DiaryEntry) error
	Delete(id uuid.UUID) error
	List() ([]models.DiaryEntry, error)
	ListByStudent(studentID uuid.UUID) ([]models.DiaryEntry, error)
	ListByPractice(practiceID uuid.UUID) ([]models.DiaryEntry, error)
	CountUnconfirmed() (int64, error)
}

// diaryRepository реализация репозитория дневника
type diaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository создает новый репозиторий дневника
func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

// Create создает запись дневника
func (r *diaryRepository) Create(entry *models.DiaryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.Create(entry).Error
}

// GetByID получает запись по ID
func (r *diaryRepository) GetByID(id uuid.UUID) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update обновляет запись
func (r *diaryRepository) Update(entry *models.DiaryEntry) error {
	return r.db.Save(entry).Error
}

// Delete удаляет запись
func (r *diaryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DiaryEntry{}, "id = ?", id).Error
}

// List получает все записи в порядке создания
func (r *diaryRepository) List() ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := r.db.Order("created_at").Find(&entries).Error
	return entries, err
}

// ListByStudent получает записи студента
func (r *diaryRepository) ListByStudent(studentID uuid.UUID) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := r.db.Where("student_id = ?", studentID).Order("date").Find(&entries).Error
	return entries, err
}

// ListByPractice получает записи по практике
func (r *diaryRepository) ListByPractice(practiceID uuid.UUID) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := r.db.Where("practice_id = ?", practiceID).Order("date").Find(&entries).Error
	return entries, err
}

// CountUnconfirmed считает неподтвержденные записи (для панели руководителя)
func (r *diaryRepository) CountUnconfirmed() (int64, error) {
	var count int64
	err := r.db.Model(&models.DiaryEntry{}).Where("confirmed = ?", false).Count(&count).Error
	return count, err
}
