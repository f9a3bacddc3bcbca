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

// RegistrationService представляет процесс регистрации: подача заявки,
// одобрение с созданием пользователя, отклонение
type RegistrationService struct {
	db       *gorm.DB
	regRepo  repository.RegistrationRepository
	userRepo repository.UserRepository
	notifier *telegram.Notifier
}

// NewRegistrationService создает новый сервис регистрации
func NewRegistrationService(
	db *gorm.DB,
	regRepo repository.RegistrationRepository,
	userRepo repository.UserRepository,
	notifier *telegram.Notifier,
) *RegistrationService {
	return &RegistrationService{
		db:       db,
		regRepo:  regRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// SubmitInput данные заявки на регистрацию
type SubmitInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Group    string
}

// Submit создает заявку на регистрацию. Email не должен совпадать с email
// одобренного пользователя или другой неотклоненной заявки.
func (s *RegistrationService) Submit(input SubmitInput) (*models.PendingRegistration, error) {
	taken, err := s.userRepo.EmailExists(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if !taken {
		taken, err = s.regRepo.ActiveEmailExists(input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}
	if taken {
		return nil, models.ErrEmailTaken
	}

	reg := &models.PendingRegistration{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		Role:        input.Role,
		Group:       input.Group,
		RequestDate: time.Now().Format(models.DateFormat),
		Status:      models.RegistrationPending,
	}

	if err := s.regRepo.Create(reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	// Уведомляем руководителей о новой заявке
	supervisors, err := s.userRepo.ListByRole(models.RoleSupervisor)
	if err == nil {
		notifRepo := repository.NewNotificationRepository(s.db)
		for _, sup := range supervisors {
			notifRepo.Create(&models.Notification{
				UserID:    sup.ID,
				Title:     "Заявка на регистрацию",
				Message:   fmt.Sprintf("%s запросил доступ к системе (%s)", reg.Name, reg.Role),
				Type:      models.NotificationWarning,
				CreatedAt: time.Now(),
			})
		}
	}

	s.notifier.NotifyRegistrationRequest(reg.Name, reg.Role)

	return reg, nil
}

// Approve одобряет заявку и создает пользователя. Руководители одобряют
// студентов и преподавателей, преподаватели — только студентов. Заявка и
// новый пользователь записываются в одной транзакции, поэтому вход сразу
// после одобрения гарантированно находит пользователя.
func (s *RegistrationService) Approve(id uuid.UUID, approver *models.User) (*models.User, error) {
	reg, err := s.regRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reg.Status != models.RegistrationPending {
		return nil, fmt.Errorf("registration %s is already processed", id)
	}
	if !models.CanApprove(approver.Role, reg.Role) {
		return nil, models.ErrForbidden
	}

	// ID пользователя генерируется заново и не зависит от ID заявки
	newUser := &models.User{
		ID:             uuid.New(),
		Name:           reg.Name,
		Role:           reg.Role,
		Group:          reg.Group,
		Email:          reg.Email,
		RegisteredDate: time.Now().Format(models.DateFormat),
		Approved:       true,
		ApprovedBy:     &approver.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRegs := repository.NewRegistrationRepository(tx)
		txUsers := repository.NewUserRepository(tx)
		txActivity := repository.NewActivityRepository(tx)

		reg.Status = models.RegistrationApproved
		if err := txRegs.Update(reg); err != nil {
			return fmt.Errorf("failed to update registration: %w", err)
		}
		if err := txUsers.Create(newUser); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return txActivity.Create(&models.ActivityLog{
			UserID:    approver.ID,
			UserName:  approver.Name,
			Action:    "Одобрил регистрацию",
			Details:   reg.Name,
			Timestamp: time.Now(),
			Type:      models.ActivityApproval,
		})
	})
	if err != nil {
		return nil, err
	}

	return newUser, nil
}

// Reject отклоняет заявку. Пользователь не создается.
func (s *RegistrationService) Reject(id uuid.UUID, approver *models.User) error {
	reg, err := s.regRepo.GetByID(id)
	if err != nil {
		return err
	}
	if reg.Status != models.RegistrationPending {
		return fmt.Errorf("registration %s is already processed", id)
	}
	if !models.CanApprove(approver.Role, reg.Role) {
		return models.ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txRegs := repository.NewRegistrationRepository(tx)
		txActivity := repository.NewActivityRepository(tx)

		reg.Status = models.RegistrationRejected
		if err := txRegs.Update(reg); err != nil {
			return fmt.Errorf("failed to update registration: %w", err)
		}
		return txActivity.Create(&models.ActivityLog{
			UserID:    approver.ID,
			UserName:  approver.Name,
			Action:    "Отклонил регистрацию",
			Details:   reg.Name,
			Timestamp: time.Now(),
			Type:      models.ActivityApproval,
		})
	})
}

// List получает все заявки
func (s *RegistrationService) List() ([]models.PendingRegistration, error) {
	return s.regRepo.List()
}

// ListPendingFor получает ожидающие заявки, которые пользователь вправе
// рассматривать
func (s *RegistrationService) ListPendingFor(approver *models.User) ([]models.PendingRegistration, error) {
	pending, err := s.regRepo.ListByStatus(models.RegistrationPending)
	if err != nil {
		return nil, err
	}

	eligible := make([]models.PendingRegistration, 0, len(pending))
	for _, reg := range pending {
		if models.CanApprove(approver.Role, reg.Role) {
			eligible = append(eligible, reg)
		}
	}
	return eligible, nil
}
