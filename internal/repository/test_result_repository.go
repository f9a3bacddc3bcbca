package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestResultRepository интерфейс для работы с результатами тестов.
// Результаты создаются один раз и не изменяются.
type TestResultRepository interface {
	Create(result *models.TestResult) error
	GetByID(id uuid.UUID) (*models.TestResult, error)
	GetByTestAndStudent(testID, studentID uuid.UUID) (*models.TestResult, error)
	List() ([]models.TestResult, error)
	ListByStudent(studentID uuid.UUID) ([]models.TestResult, error)
	ListByTest(testID uuid.UUID) ([]models.TestResult, error)
}

// testResultRepository реализация репозитория результатов
type testResultRepository struct {
	db *gorm.DB
}

// NewTestResultRepository создает новый репозиторий результатов
func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

// Create создает результат теста
func (r *testResultRepository) Create(result *models.TestResult) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	return r.db.Create(result).Error
}

// GetByID получает результат по ID
func (r *testResultRepository) GetByID(id uuid.UUID) (*models.TestResult, error) {
	var result models.TestResult
	err := r.db.First(&result, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByTestAndStudent получает результат студента по конкретному тесту
func (r *testResultRepository) GetByTestAndStudent(testID, studentID uuid.UUID) (*models.TestResult, error) {
	var result models.TestResult
	err := r.db.Where("test_id = ? AND student_id = ?", testID, studentID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// List получает все результаты
func (r *testResultRepository) List() ([]models.TestResult, error) {
	var results []models.TestResult
	err := r.db.Order("created_at").Find(&results).Error
	return results, err
}

// ListByStudent получает результаты студента
func (r *testResultRepository) ListByStudent(studentID uuid.UUID) ([]models.TestResult, error) {
	var results []models.TestResult
	err := r.db.Where("student_id = ?", studentID).Order("created_at").Find(&results).Error
	return results, err
}

// ListByTest получает результаты по тесту
func (r *testResultRepository) ListByTest(testID uuid.UUID) ([]models.TestResult, error) {
	var results []models.TestResult
	err := r.db.Where("test_id = ?", testID).Order("created_at").Find(&results).Error
	return results, err
}
