package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationRepository интерфейс для работы с заявками на регистрацию
type RegistrationRepository interface {
	Create(reg *models.PendingRegistration) error
	GetByID(id uuid.UUID) (*models.PendingRegistration, error)
	Update(reg *models.PendingRegistration) error
	List() ([]models.PendingRegistration, error)
	ListByStatus(status models.RegistrationStatus) ([]models.PendingRegistration, error)
	ActiveEmailExists(email string) (bool, error)
}

// registrationRepository реализация репозитория заявок
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository создает новый репозиторий заявок
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create создает новую заявку
func (r *registrationRepository) Create(reg *models.PendingRegistration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	return r.db.Create(reg).Error
}

// GetByID получает заявку по ID
func (r *registrationRepository) GetByID(id uuid.UUID) (*models.PendingRegistration, error) {
	var reg models.PendingRegistration
	err := r.db.First(&reg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Update обновляет заявку
func (r *registrationRepository) Update(reg *models.PendingRegistration) error {
	return r.db.Save(reg).Error
}

// List получает все заявки
func (r *registrationRepository) List() ([]models.PendingRegistration, error) {
	var regs []models.PendingRegistration
	err := r.db.Order("created_at").Find(&regs).Error
	return regs, err
}

// ListByStatus получает заявки с указанным статусом
func (r *registrationRepository) ListByStatus(status models.RegistrationStatus) ([]models.PendingRegistration, error) {
	var regs []models.PendingRegistration
	err := r.db.Where("status = ?", status).Order("created_at").Find(&regs).Error
	return regs, err
}

// ActiveEmailExists проверяет, есть ли неотклоненная заявка с таким email
func (r *registrationRepository) ActiveEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.PendingRegistration{}).
		Where("email = ? AND status != ?", email, models.RegistrationRejected).
		Count(&count).Error
	return count > 0, err
}
