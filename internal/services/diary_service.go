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

// DiaryService представляет сервис дневника практики. Операции, которые
// раньше требовали от вызывающей стороны отдельно создавать уведомления
// и записи журнала, выполняют все побочные записи в одной транзакции.
type DiaryService struct {
	db           *gorm.DB
	diaryRepo    repository.DiaryRepository
	practiceRepo repository.PracticeRepository
	userRepo     repository.UserRepository
	notifier     *telegram.Notifier
}

// NewDiaryService создает новый сервис дневника
func NewDiaryService(
	db *gorm.DB,
	diaryRepo repository.DiaryRepository,
	practiceRepo repository.PracticeRepository,
	userRepo repository.UserRepository,
	notifier *telegram.Notifier,
) *DiaryService {
	return &DiaryService{
		db:           db,
		diaryRepo:    diaryRepo,
		practiceRepo: practiceRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// AddEntryInput данные новой записи дневника
type AddEntryInput struct {
	PracticeID  uuid.UUID
	Date        string
	Description string
	Hours       int
}

// AddEntry создает запись дневника, уведомляет руководителя практики
// и пишет запись в журнал действий
func (s *DiaryService) AddEntry(student *models.User, input AddEntryInput) (*models.DiaryEntry, error) {
	practice, err := s.practiceRepo.GetByID(input.PracticeID)
	if err != nil {
		return nil, fmt.Errorf("practice not found: %w", err)
	}

	entry := &models.DiaryEntry{
		ID:          uuid.New(),
		StudentID:   student.ID,
		PracticeID:  practice.ID,
		Date:        input.Date,
		Description: input.Description,
		Hours:       input.Hours,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewDiaryRepository(tx).Create(entry); err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}
		if err := repository.NewNotificationRepository(tx).Create(&models.Notification{
			UserID:    practice.SupervisorID,
			Title:     "Новая запись",
			Message:   fmt.Sprintf("%s добавил запись в дневник за %s", student.Name, entry.Date),
			Type:      models.NotificationInfo,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return repository.NewActivityRepository(tx).Create(&models.ActivityLog{
			UserID:    student.ID,
			UserName:  student.Name,
			Action:    "Добавил запись",
			Details:   fmt.Sprintf("Дневник практики, %s", entry.Date),
			Timestamp: time.Now(),
			Type:      models.ActivityDiary,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyNewEntry(student.Name, entry.Date, entry.Hours)

	return entry, nil
}

// EntryUpdate типизированный частичный апдейт записи дневника
type EntryUpdate struct {
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
	Hours       *int    `json:"hours,omitempty"`
}

// UpdateEntry обновляет собственную запись студента
func (s *DiaryService) UpdateEntry(student *models.User, id uuid.UUID, update EntryUpdate) (*models.DiaryEntry, error) {
	entry, err := s.diaryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry.StudentID != student.ID {
		return nil, models.ErrNotOwner
	}

	if update.Date != nil {
		entry.Date = *update.Date
	}
	if update.Description != nil {
		entry.Description = *update.Description
	}
	if update.Hours != nil {
		entry.Hours = *update.Hours
	}

	if err := s.diaryRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry удаляет запись. Студент может удалить только свою
// неподтвержденную запись.
func (s *DiaryService) DeleteEntry(student *models.User, id uuid.UUID) error {
	entry, err := s.diaryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry.StudentID != student.ID {
		return models.ErrNotOwner
	}
	if entry.Confirmed {
		return models.ErrEntryConfirmed
	}
	return s.diaryRepo.Delete(id)
}

// ConfirmHours подтверждает часы записи. Повторное подтверждение
// уже подтвержденной записи не является ошибкой.
func (s *DiaryService) ConfirmHours(supervisor *models.User, id uuid.UUID) (*models.DiaryEntry, error) {
	entry, err := s.diaryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry.Confirmed {
		return entry, nil
	}

	student, err := s.userRepo.GetByID(entry.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		entry.Confirmed = true
		if err := repository.NewDiaryRepository(tx).Update(entry); err != nil {
			return fmt.Errorf("failed to confirm entry: %w", err)
		}
		if err := repository.NewNotificationRepository(tx).Create(&models.Notification{
			UserID:    entry.StudentID,
			Title:     "Часы подтверждены",
			Message:   fmt.Sprintf("Руководитель подтвердил %d ч за %s", entry.Hours, entry.Date),
			Type:      models.NotificationSuccess,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return repository.NewActivityRepository(tx).Create(&models.ActivityLog{
			UserID:    supervisor.ID,
			UserName:  supervisor.Name,
			Action:    "Подтвердил часы",
			Details:   fmt.Sprintf("%s, %s — %dч", student.Name, entry.Date, entry.Hours),
			Timestamp: time.Now(),
			Type:      models.ActivityDiary,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyConfirmedHours(student.Name, entry.Date, entry.Hours)

	return entry, nil
}

// ConfirmAll подтверждает несколько записей разом. Отсутствующие и уже
// подтвержденные записи пропускаются. Возвращает число подтвержденных.
func (s *DiaryService) ConfirmAll(supervisor *models.User, ids []uuid.UUID) (int, error) {
	confirmed := 0
	for _, id := range ids {
		entry, err := s.diaryRepo.GetByID(id)
		if err != nil || entry.Confirmed {
			continue
		}
		if _, err := s.ConfirmHours(supervisor, id); err == nil {
			confirmed++
		}
	}
	return confirmed, nil
}

// AddComment добавляет комментарий руководителя к записи и уведомляет студента
func (s *DiaryService) AddComment(supervisor *models.User, id uuid.UUID, comment string) (*models.DiaryEntry, error) {
	entry, err := s.diaryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	student, err := s.userRepo.GetByID(entry.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		entry.Comment = comment
		if err := repository.NewDiaryRepository(tx).Update(entry); err != nil {
			return fmt.Errorf("failed to save comment: %w", err)
		}
		if err := repository.NewNotificationRepository(tx).Create(&models.Notification{
			UserID:    entry.StudentID,
			Title:     "Новый комментарий",
			Message:   fmt.Sprintf("%s оставил комментарий к записи от %s", supervisor.Name, entry.Date),
			Type:      models.NotificationInfo,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return repository.NewActivityRepository(tx).Create(&models.ActivityLog{
			UserID:    supervisor.ID,
			UserName:  supervisor.Name,
			Action:    "Оставил комментарий",
			Details:   fmt.Sprintf("К записи %s от %s", student.Name, entry.Date),
			Timestamp: time.Now(),
			Type:      models.ActivityComment,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyNewComment(supervisor.Name, student.Name)

	return entry, nil
}

// AddRating ставит записи оценку от 1 до 5
func (s *DiaryService) AddRating(supervisor *models.User, id uuid.UUID, rating int) (*models.DiaryEntry, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	entry, err := s.diaryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	entry.Rating = rating
	if err := s.diaryRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}
	return entry, nil
}

// ListByStudent получает записи студента
func (s *DiaryService) ListByStudent(studentID uuid.UUID) ([]models.DiaryEntry, error) {
	return s.diaryRepo.ListByStudent(studentID)
}

// List получает все записи (для руководителей и преподавателей)
func (s *DiaryService) List() ([]models.DiaryEntry, error) {
	return s.diaryRepo.List()
}

// ListByPractice получает записи одной практики
func (s *DiaryService) ListByPractice(practiceID uuid.UUID) ([]models.DiaryEntry, error) {
	return s.diaryRepo.ListByPractice(practiceID)
}

// ListPractices получает справочник практик
func (s *DiaryService) ListPractices() ([]models.Practice, error) {
	return s.practiceRepo.List()
}

// ListPracticesByGroup получает практики группы
func (s *DiaryService) ListPracticesByGroup(group string) ([]models.Practice, error) {
	return s.practiceRepo.ListByGroup(group)
}
