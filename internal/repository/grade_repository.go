package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeRepository интерфейс для работы с оценками
type GradeRepository interface {
	Create(grade *models.Grade) error
	GetByID(id uuid.UUID) (*models.Grade, error)
	Update(grade *models.Grade) error
	Delete(id uuid.UUID) error
	List() ([]models.Grade, error)
	ListByStudent(studentID uuid.UUID) ([]models.Grade, error)
}

// gradeRepository реализация репозитория оценок
type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository создает новый репозиторий оценок
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

// Create создает оценку
func (r *gradeRepository) Create(grade *models.Grade) error {
	if grade.ID == uuid.Nil {
		grade.ID = uuid.New()
	}
	return r.db.Create(grade).Error
}

// GetByID получает оценку по ID
func (r *gradeRepository) GetByID(id uuid.UUID) (*models.Grade, error) {
	var grade models.Grade
	err := r.db.First(&grade, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

// Update обновляет оценку
func (r *gradeRepository) Update(grade *models.Grade) error {
	return r.db.Save(grade).Error
}

// Delete удаляет оценку
func (r *gradeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Grade{}, "id = ?", id).Error
}

// List получает все оценки
func (r *gradeRepository) List() ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.Order("created_at").Find(&grades).Error
	return grades, err
}

// ListByStudent получает оценки студента
func (r *gradeRepository) ListByStudent(studentID uuid.UUID) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.Where("student_id = ?", studentID).Order("created_at").Find(&grades).Error
	return grades, err
}
