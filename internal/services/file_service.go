package services

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/storage"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/telegram"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileService представляет сервис загруженных файлов
type FileService struct {
	db           *gorm.DB
	fileRepo     repository.FileRepository
	practiceRepo repository.PracticeRepository
	userRepo     repository.UserRepository
	storage      *storage.Storage
	notifier     *telegram.Notifier
}

// NewFileService создает новый сервис файлов
func NewFileService(
	db *gorm.DB,
	fileRepo repository.FileRepository,
	practiceRepo repository.PracticeRepository,
	userRepo repository.UserRepository,
	fileStorage *storage.Storage,
	notifier *telegram.Notifier,
) *FileService {
	return &FileService{
		db:           db,
		fileRepo:     fileRepo,
		practiceRepo: practiceRepo,
		userRepo:     userRepo,
		storage:      fileStorage,
		notifier:     notifier,
	}
}

// formatSize возвращает размер файла в человекочитаемом виде
func formatSize(bytes int64) string {
	const mb = 1024 * 1024
	if bytes >= mb {
		return fmt.Sprintf("%.1f МБ", float64(bytes)/mb)
	}
	return fmt.Sprintf("%.1f КБ", float64(bytes)/1024)
}

// Upload сохраняет файл в хранилище и создает запись о нем со статусом
// pending, уведомляя руководителя практики
func (s *FileService) Upload(student *models.User, practiceID uuid.UUID, header *multipart.FileHeader) (*models.UploadedFile, error) {
	practice, err := s.practiceRepo.GetByID(practiceID)
	if err != nil {
		return nil, fmt.Errorf("practice not found: %w", err)
	}

	path, err := s.storage.SaveFile(header, student.ID, "practice")
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	file := &models.UploadedFile{
		ID:          uuid.New(),
		StudentID:   student.ID,
		StudentName: student.Name,
		PracticeID:  practice.ID,
		Name:        header.Filename,
		Type:        header.Header.Get("Content-Type"),
		UploadDate:  time.Now().Format(models.DateFormat),
		Size:        formatSize(header.Size),
		Status:      models.FilePending,
		FilePath:    path,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewFileRepository(tx).Create(file); err != nil {
			return fmt.Errorf("failed to create file record: %w", err)
		}
		if err := repository.NewNotificationRepository(tx).Create(&models.Notification{
			UserID:    practice.SupervisorID,
			Title:     "Загружен файл",
			Message:   fmt.Sprintf("%s загрузил «%s»", student.Name, file.Name),
			Type:      models.NotificationInfo,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return repository.NewActivityRepository(tx).Create(&models.ActivityLog{
			UserID:    student.ID,
			UserName:  student.Name,
			Action:    "Загрузил файл",
			Details:   file.Name,
			Timestamp: time.Now(),
			Type:      models.ActivityFile,
		})
	})
	if err != nil {
		s.storage.DeleteFile(path)
		return nil, err
	}

	s.notifier.NotifyFileUploaded(student.Name, file.Name)

	return file, nil
}

// UpdateStatus изменяет статус файла и сохраняет комментарий проверяющего,
// уведомляя студента
func (s *FileService) UpdateStatus(reviewer *models.User, id uuid.UUID, status models.FileStatus, comment string) (*models.UploadedFile, error) {
	file, err := s.fileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		file.Status = status
		if comment != "" {
			file.ReviewComment = comment
		}
		if err := repository.NewFileRepository(tx).Update(file); err != nil {
			return fmt.Errorf("failed to update file: %w", err)
		}
		return repository.NewNotificationRepository(tx).Create(&models.Notification{
			UserID:    file.StudentID,
			Title:     "Статус файла обновлен",
			Message:   fmt.Sprintf("«%s»: %s", file.Name, status),
			Type:      models.NotificationInfo,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Delete удаляет файл. Студент может удалить только свой файл и только
// пока он не рассмотрен.
func (s *FileService) Delete(student *models.User, id uuid.UUID) error {
	file, err := s.fileRepo.GetByID(id)
	if err != nil {
		return err
	}
	if file.StudentID != student.ID {
		return models.ErrNotOwner
	}
	if file.Status != models.FilePending {
		return models.ErrFileProcessed
	}

	if err := s.fileRepo.Delete(id); err != nil {
		return err
	}
	if file.FilePath != "" {
		s.storage.DeleteFile(file.FilePath)
	}
	return nil
}

// ListByStudent получает файлы студента
func (s *FileService) ListByStudent(studentID uuid.UUID) ([]models.UploadedFile, error) {
	return s.fileRepo.ListByStudent(studentID)
}

// List получает все файлы (для проверяющих)
func (s *FileService) List() ([]models.UploadedFile, error) {
	return s.fileRepo.List()
}
