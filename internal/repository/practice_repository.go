package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeRepository интерфейс для работы со справочником практик
type PracticeRepository interface {
	Create(practice *models.Practice) error
	GetByID(id uuid.UUID) (*models.Practice, error)
	List() ([]models.Practice, error)
	ListByGroup(group string) ([]models.Practice, error)
}

// practiceRepository реализация репозитория практик
type practiceRepository struct {
	db *gorm.DB
}

// NewPracticeRepository создает новый репозиторий практик
func NewPracticeRepository(db *gorm.DB) PracticeRepository {
	return &practiceRepository{db: db}
}

// Create создает практику (используется только при начальном заполнении)
func (r *practiceRepository) Create(practice *models.Practice) error {
	if practice.ID == uuid.Nil {
		practice.ID = uuid.New()
	}
	return r.db.Create(practice).Error
}

// GetByID получает практику по ID
func (r *practiceRepository) GetByID(id uuid.UUID) (*models.Practice, error) {
	var practice models.Practice
	err := r.db.First(&practice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &practice, nil
}

// List получает все практики
func (r *practiceRepository) List() ([]models.Practice, error) {
	var practices []models.Practice
	err := r.db.Order("start_date").Find(&practices).Error
	return practices, err
}

// ListByGroup получает практики группы
func (r *practiceRepository) ListByGroup(group string) ([]models.Practice, error) {
	var practices []models.Practice
	err := r.db.Where("student_group = ?", group).Order("start_date").Find(&practices).Error
	return practices, err
}
