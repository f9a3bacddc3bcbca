package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignedTestRepository интерфейс для работы с назначенными тестами
type AssignedTestRepository interface {
	Create(test *models.AssignedTest) error
	GetByID(id uuid.UUID) (*models.AssignedTest, error)
	Delete(id uuid.UUID) error
	List() ([]models.AssignedTest, error)
	ListByGroup(group string) ([]models.AssignedTest, error)
	ListByTeacher(teacherID uuid.UUID) ([]models.AssignedTest, error)
}

// assignedTestRepository реализация репозитория назначенных тестов
type assignedTestRepository struct {
	db *gorm.DB
}

// NewAssignedTestRepository создает новый репозиторий назначенных тестов
func NewAssignedTestRepository(db *gorm.DB) AssignedTestRepository {
	return &assignedTestRepository{db: db}
}

// Create создает назначенный тест
func (r *assignedTestRepository) Create(test *models.AssignedTest) error {
	if test.ID == uuid.Nil {
		test.ID = uuid.New()
	}
	return r.db.Create(test).Error
}

// GetByID получает назначенный тест по ID
func (r *assignedTestRepository) GetByID(id uuid.UUID) (*models.AssignedTest, error) {
	var test models.AssignedTest
	err := r.db.First(&test, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// Delete удаляет назначенный тест
func (r *assignedTestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AssignedTest{}, "id = ?", id).Error
}

// List получает все назначенные тесты
func (r *assignedTestRepository) List() ([]models.AssignedTest, error) {
	var tests []models.AssignedTest
	err := r.db.Order("created_at").Find(&tests).Error
	return tests, err
}

// ListByGroup получает тесты, назначенные группе
func (r *assignedTestRepository) ListByGroup(group string) ([]models.AssignedTest, error) {
	var tests []models.AssignedTest
	err := r.db.Where("assigned_to = ?", group).Order("created_at").Find(&tests).Error
	return tests, err
}

// ListByTeacher получает тесты, назначенные преподавателем
func (r *assignedTestRepository) ListByTeacher(teacherID uuid.UUID) ([]models.AssignedTest, error) {
	var tests []models.AssignedTest
	err := r.db.Where("assigned_by = ?", teacherID).Order("created_at").Find(&tests).Error
	return tests, err
}
