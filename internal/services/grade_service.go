package services

import (
	"fmt"
	"time"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/telegram"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeService представляет сервис оценок
type GradeService struct {
	db        *gorm.DB
	gradeRepo repository.GradeRepository
	userRepo  repository.UserRepository
	notifier  *telegram.Notifier
}

// NewGradeService создает новый сервис оценок
func NewGradeService(
	db *gorm.DB,
	gradeRepo repository.GradeRepository,
	userRepo repository.UserRepository,
	notifier *telegram.Notifier,
) *GradeService {
	return &GradeService{
		db:        db,
		gradeRepo: gradeRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// AddGradeInput данные новой оценки
type AddGradeInput struct {
	StudentID   uuid.UUID
	Category    string
	Subcategory string
	Score       int
	Comment     string
}

// Add выставляет оценку студенту, уведомляет его и пишет в журнал
func (s *GradeService) Add(grader *models.User, input AddGradeInput) (*models.Grade, error) {
	if input.Score < 0 || input.Score > 100 {
		return nil, fmt.Errorf("score must be between 0 and 100")
	}

	student, err := s.userRepo.GetByID(input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}

	grade := &models.Grade{
		ID:          uuid.New(),
		StudentID:   student.ID,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Score:       input.Score,
		MaxScore:    100,
		Date:        time.Now().Format(models.DateFormat),
		Comment:     input.Comment,
		GivenBy:     grader.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewGradeRepository(tx).Create(grade); err != nil {
			return fmt.Errorf("failed to create grade: %w", err)
		}
		if err := repository.NewNotificationRepository(tx).Create(&models.Notification{
			UserID:    student.ID,
			Title:     "Новая оценка",
			Message:   fmt.Sprintf("%s поставил оценку %d/%d (%s)", grader.Name, grade.Score, grade.MaxScore, grade.Category),
			Type:      models.NotificationInfo,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return repository.NewActivityRepository(tx).Create(&models.ActivityLog{
			UserID:    grader.ID,
			UserName:  grader.Name,
			Action:    "Поставил оценку",
			Details:   fmt.Sprintf("%s — %d/%d (%s)", student.Name, grade.Score, grade.MaxScore, grade.Category),
			Timestamp: time.Now(),
			Type:      models.ActivityGrade,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyGradeAdded(student.Name, grade.Score, grade.MaxScore)

	return grade, nil
}

// GradeUpdate типизированный частичный апдейт оценки
type GradeUpdate struct {
	Category    *string `json:"category,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`
	Score       *int    `json:"score,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}

// Update обновляет оценку
func (s *GradeService) Update(id uuid.UUID, update GradeUpdate) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Category != nil {
		grade.Category = *update.Category
	}
	if update.Subcategory != nil {
		grade.Subcategory = *update.Subcategory
	}
	if update.Score != nil {
		if *update.Score < 0 || *update.Score > 100 {
			return nil, fmt.Errorf("score must be between 0 and 100")
		}
		grade.Score = *update.Score
	}
	if update.Comment != nil {
		grade.Comment = *update.Comment
	}

	if err := s.gradeRepo.Update(grade); err != nil {
		return nil, fmt.Errorf("failed to update grade: %w", err)
	}
	return grade, nil
}

// Delete удаляет оценку
func (s *GradeService) Delete(id uuid.UUID) error {
	if _, err := s.gradeRepo.GetByID(id); err != nil {
		return err
	}
	return s.gradeRepo.Delete(id)
}

// ListByStudent получает оценки студента
func (s *GradeService) ListByStudent(studentID uuid.UUID) ([]models.Grade, error) {
	return s.gradeRepo.ListByStudent(studentID)
}

// List получает все оценки
func (s *GradeService) List() ([]models.Grade, error) {
	return s.gradeRepo.List()
}
