package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/telegram"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestService представляет сервис тестирования: шаблоны, назначение
// и прохождение тестов
type TestService struct {
	db           *gorm.DB
	templateRepo repository.TemplateRepository
	assignedRepo repository.AssignedTestRepository
	resultRepo   repository.TestResultRepository
	userRepo     repository.UserRepository
	notifier     *telegram.Notifier
}

// NewTestService создает новый сервис тестирования
func NewTestService(
	db *gorm.DB,
	templateRepo repository.TemplateRepository,
	assignedRepo repository.AssignedTestRepository,
	resultRepo repository.TestResultRepository,
	userRepo repository.UserRepository,
	notifier *telegram.Notifier,
) *TestService {
	return &TestService{
		db:           db,
		templateRepo: templateRepo,
		assignedRepo: assignedRepo,
		resultRepo:   resultRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// CreateTemplate создает шаблон теста
func (s *TestService) CreateTemplate(teacher *models.User, template *models.TestTemplate) error {
	template.ID = uuid.New()
	template.CreatedBy = &teacher.ID
	if template.PassingScore == 0 {
		template.PassingScore = models.DefaultPassingScore
	}
	return s.templateRepo.Create(template)
}

// TemplateUpdate типизированный частичный апдейт шаблона
type TemplateUpdate struct {
	Title         *string              `json:"title,omitempty"`
	Topic         *string              `json:"topic,omitempty"`
	Description   *string              `json:"description,omitempty"`
	TopicMaterial *string              `json:"topic_material,omitempty"`
	Difficulty    *models.Difficulty   `json:"difficulty,omitempty"`
	Questions     *models.QuestionList `json:"questions,omitempty"`
	TimeLimit     *int                 `json:"time_limit,omitempty"`
	PassingScore  *int                 `json:"passing_score,omitempty"`
}

// UpdateTemplate обновляет шаблон
func (s *TestService) UpdateTemplate(id uuid.UUID, update TemplateUpdate) (*models.TestTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		template.Title = *update.Title
	}
	if update.Topic != nil {
		template.Topic = *update.Topic
	}
	if update.Description != nil {
		template.Description = *update.Description
	}
	if update.TopicMaterial != nil {
		template.TopicMaterial = *update.TopicMaterial
	}
	if update.Difficulty != nil {
		template.Difficulty = *update.Difficulty
	}
	if update.Questions != nil {
		template.Questions = *update.Questions
	}
	if update.TimeLimit != nil {
		template.TimeLimit = *update.TimeLimit
	}
	if update.PassingScore != nil {
		template.PassingScore = *update.PassingScore
	}

	if err := s.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return template, nil
}

// DuplicateTemplate создает копию шаблона с новым ID
func (s *TestService) DuplicateTemplate(teacher *models.User, id uuid.UUID) (*models.TestTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	copied := *template
	copied.ID = uuid.New()
	copied.Title = template.Title + " (копия)"
	copied.CreatedBy = &teacher.ID
	copied.CreatedAt = time.Time{}
	copied.UpdatedAt = time.Time{}

	if err := s.templateRepo.Create(&copied); err != nil {
		return nil, fmt.Errorf("failed to duplicate template: %w", err)
	}
	return &copied, nil
}

// DeleteTemplate удаляет шаблон. Назначенные тесты живут независимо
// и не затрагиваются.
func (s *TestService) DeleteTemplate(id uuid.UUID) error {
	if _, err := s.templateRepo.GetByID(id); err != nil {
		return err
	}
	return s.templateRepo.Delete(id)
}

// ListTemplates получает все шаблоны
func (s *TestService) ListTemplates() ([]models.TestTemplate, error) {
	return s.templateRepo.List()
}

// AssignInput параметры назначения теста группе
type AssignInput struct {
	TemplateID uuid.UUID
	Group      string
	Deadline   string
	Title      string // пустое — берется заголовок шаблона
}

// Assign назначает тест группе. Содержимое шаблона копируется в назначенный
// тест, поэтому последующие правки или удаление шаблона на него не влияют.
func (s *TestService) Assign(teacher *models.User, input AssignInput) (*models.AssignedTest, error) {
	template, err := s.templateRepo.GetByID(input.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}

	title := input.Title
	if title == "" {
		title = fmt.Sprintf("%s — %s", template.Title, input.Group)
	}

	questions := make(models.QuestionList, len(template.Questions))
	copy(questions, template.Questions)

	test := &models.AssignedTest{
		ID:            uuid.New(),
		TemplateID:    template.ID,
		Title:         title,
		Topic:         template.Topic,
		TopicMaterial: template.TopicMaterial,
		Difficulty:    template.Difficulty,
		Questions:     questions,
		AssignedTo:    input.Group,
		AssignedBy:    teacher.ID,
		AssignedDate:  time.Now().Format(models.DateFormat),
		Deadline:      input.Deadline,
		TimeLimit:     template.TimeLimit,
		PassingScore:  template.PassingScore,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewAssignedTestRepository(tx).Create(test); err != nil {
			return fmt.Errorf("failed to assign test: %w", err)
		}

		// Уведомляем студентов группы
		students, err := repository.NewUserRepository(tx).ListByGroup(input.Group)
		if err != nil {
			return err
		}
		notifRepo := repository.NewNotificationRepository(tx)
		for _, student := range students {
			if err := notifRepo.Create(&models.Notification{
				UserID:    student.ID,
				Title:     "Назначен тест",
				Message:   fmt.Sprintf("Вам назначен тест «%s»", test.Title),
				Type:      models.NotificationWarning,
				CreatedAt: time.Now(),
			}); err != nil {
				return err
			}
		}

		return repository.NewActivityRepository(tx).Create(&models.ActivityLog{
			UserID:    teacher.ID,
			UserName:  teacher.Name,
			Action:    "Назначил тест",
			Details:   fmt.Sprintf("%s → %s", template.Title, input.Group),
			Timestamp: time.Now(),
			Type:      models.ActivityTest,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyTestAssigned(test.Title, input.Group)

	return test, nil
}

// StudentTests назначенные студенту тесты, разделенные на пройденные
// и ожидающие
type StudentTests struct {
	Pending   []models.AssignedTest       `json:"pending"`
	Completed []CompletedTest             `json:"completed"`
	Results   map[string]models.TestResult `json:"-"`
}

// CompletedTest пройденный тест вместе с результатом
type CompletedTest struct {
	Test   models.AssignedTest `json:"test"`
	Result models.TestResult   `json:"result"`
}

// ListForStudent получает тесты группы студента. Пройденные тесты
// исключаются из списка доступных.
func (s *TestService) ListForStudent(student *models.User) (*StudentTests, error) {
	tests, err := s.assignedRepo.ListByGroup(student.Group)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.ListByStudent(student.ID)
	if err != nil {
		return nil, err
	}

	byTest := make(map[uuid.UUID]models.TestResult, len(results))
	for _, r := range results {
		byTest[r.TestID] = r
	}

	out := &StudentTests{
		Pending:   []models.AssignedTest{},
		Completed: []CompletedTest{},
	}
	for _, t := range tests {
		if r, done := byTest[t.ID]; done {
			out.Completed = append(out.Completed, CompletedTest{Test: t, Result: r})
		} else {
			out.Pending = append(out.Pending, t)
		}
	}
	return out, nil
}

// SubmitInput ответы студента: индекс выбранного варианта по ID вопроса.
// Вопрос без ответа оценивается как неверный.
type SubmitTestInput struct {
	TestID   uuid.UUID
	Answers  map[string]int
	TimeLeft int // оставшиеся секунды на момент отправки
}

// SubmitResult итог прохождения теста
type SubmitResult struct {
	Result  *models.TestResult `json:"result"`
	Percent int                `json:"percent"`
	Passed  bool               `json:"passed"`
}

// Submit оценивает ответы и записывает результат. Для каждой пары
// (тест, студент) результат создается ровно один раз; повторная отправка
// отклоняется.
func (s *TestService) Submit(student *models.User, input SubmitTestInput) (*SubmitResult, error) {
	test, err := s.assignedRepo.GetByID(input.TestID)
	if err != nil {
		return nil, err
	}
	if test.AssignedTo != student.Group {
		return nil, models.ErrForbidden
	}

	if _, err := s.resultRepo.GetByTestAndStudent(test.ID, student.ID); err == nil {
		return nil, models.ErrAlreadyCompleted
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	score := 0
	answers := make(models.IntList, 0, len(test.Questions))
	for _, q := range test.Questions {
		answer, ok := input.Answers[q.ID]
		if !ok {
			answer = models.NoAnswer
		}
		answers = append(answers, answer)
		if answer == q.CorrectAnswer {
			score++
		}
	}

	timeSpent := 0
	if test.TimeLimit > 0 {
		timeSpent = test.TimeLimit - input.TimeLeft/60
	}

	result := &models.TestResult{
		ID:             uuid.New(),
		TestID:         test.ID,
		StudentID:      student.ID,
		StudentName:    student.Name,
		Score:          score,
		TotalQuestions: len(test.Questions),
		CompletedDate:  time.Now().Format(models.DateFormat),
		Answers:        answers,
		TimeSpent:      timeSpent,
	}

	percent := result.Percent()
	passingScore := test.PassingScore
	if passingScore == 0 {
		passingScore = models.DefaultPassingScore
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewTestResultRepository(tx).Create(result); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		if err := repository.NewNotificationRepository(tx).Create(&models.Notification{
			UserID:    test.AssignedBy,
			Title:     "Тест пройден",
			Message:   fmt.Sprintf("%s прошёл «%s» — %d/%d", student.Name, test.Title, score, result.TotalQuestions),
			Type:      models.NotificationSuccess,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return repository.NewActivityRepository(tx).Create(&models.ActivityLog{
			UserID:    student.ID,
			UserName:  student.Name,
			Action:    "Прошёл тест",
			Details:   fmt.Sprintf("%s — %d%%", test.Title, percent),
			Timestamp: time.Now(),
			Type:      models.ActivityTest,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyTestCompleted(student.Name, test.Title, score, result.TotalQuestions)

	return &SubmitResult{
		Result:  result,
		Percent: percent,
		Passed:  percent >= passingScore,
	}, nil
}

// GetAssigned получает назначенный тест по ID
func (s *TestService) GetAssigned(id uuid.UUID) (*models.AssignedTest, error) {
	return s.assignedRepo.GetByID(id)
}

// ListAssigned получает все назначенные тесты
func (s *TestService) ListAssigned() ([]models.AssignedTest, error) {
	return s.assignedRepo.List()
}

// ListAssignedByTeacher получает тесты, назначенные преподавателем
func (s *TestService) ListAssignedByTeacher(teacherID uuid.UUID) ([]models.AssignedTest, error) {
	return s.assignedRepo.ListByTeacher(teacherID)
}

// ListResultsByTest получает результаты теста (статистика преподавателя)
func (s *TestService) ListResultsByTest(testID uuid.UUID) ([]models.TestResult, error) {
	return s.resultRepo.ListByTest(testID)
}

// ListResultsByStudent получает результаты студента
func (s *TestService) ListResultsByStudent(studentID uuid.UUID) ([]models.TestResult, error) {
	return s.resultRepo.ListByStudent(studentID)
}
