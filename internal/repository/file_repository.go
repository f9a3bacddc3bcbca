package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRepository интерфейс для работы с загруженными файлами
type FileRepository interface {
	Create(file *models.UploadedFile) error
	GetByID(id uuid.UUID) (*models.UploadedFile, error)
	Update(file *models.UploadedFile) error
	Delete(id uuid.UUID) error
	List() ([]models.UploadedFile, error)
	ListByStudent(studentID uuid.UUID) ([]models.UploadedFile, error)
	ListByStatus(status models.FileStatus) ([]models.UploadedFile, error)
}

// fileRepository реализация репозитория файлов
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository создает новый репозиторий файлов
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create создает запись о файле
func (r *fileRepository) Create(file *models.UploadedFile) error {
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	return r.db.Create(file).Error
}

// GetByID получает файл по ID
func (r *fileRepository) GetByID(id uuid.UUID) (*models.UploadedFile, error) {
	var file models.UploadedFile
	err := r.db.First(&file, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Update обновляет запись о файле
func (r *fileRepository) Update(file *models.UploadedFile) error {
	return r.db.Save(file).Error
}

// Delete удаляет запись о файле
func (r *fileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.UploadedFile{}, "id = ?", id).Error
}

// List получает все файлы
func (r *fileRepository) List() ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	err := r.db.Order("created_at").Find(&files).Error
	return files, err
}

// ListByStudent получает файлы студента
func (r *fileRepository) ListByStudent(studentID uuid.UUID) ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	err := r.db.Where("student_id = ?", studentID).Order("created_at").Find(&files).Error
	return files, err
}

// ListByStatus получает файлы с указанным статусом
func (r *fileRepository) ListByStatus(status models.FileStatus) ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	err := r.db.Where("status = ?", status).Order("created_at").Find(&files).Error
	return files, err
}
