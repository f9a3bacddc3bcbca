package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateRepository интерфейс для работы с шаблонами тестов
type TemplateRepository interface {
	Create(template *models.TestTemplate) error
	GetByID(id uuid.UUID) (*models.TestTemplate, error)
	Update(template *models.TestTemplate) error
	Delete(id uuid.UUID) error
	List() ([]models.TestTemplate, error)
}

// templateRepository реализация репозитория шаблонов
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository создает новый репозиторий шаблонов
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// Create создает шаблон теста
func (r *templateRepository) Create(template *models.TestTemplate) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	return r.db.Create(template).Error
}

// GetByID получает шаблон по ID
func (r *templateRepository) GetByID(id uuid.UUID) (*models.TestTemplate, error) {
	var template models.TestTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// Update обновляет шаблон
func (r *templateRepository) Update(template *models.TestTemplate) error {
	return r.db.Save(template).Error
}

// Delete удаляет шаблон. Назначенные по нему тесты не затрагиваются.
func (r *templateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestTemplate{}, "id = ?", id).Error
}

// List получает все шаблоны
func (r *templateRepository) List() ([]models.TestTemplate, error) {
	var templates []models.TestTemplate
	err := r.db.Order("created_at").Find(&templates).Error
	return templates, err
}
