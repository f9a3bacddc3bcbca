package repository

import (
	"errors"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository интерфейс для работы с пользователями
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List() ([]models.User, error)
	ListByRole(role models.Role) ([]models.User, error)
	ListByGroup(group string) ([]models.User, error)
	FirstApprovedByRole(role models.Role) (*models.User, error)
	EmailExists(email string) (bool, error)
}

// userRepository реализация репозитория пользователей
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создает новый репозиторий пользователей
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create создает нового пользователя
func (r *userRepository) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return r.db.Create(user).Error
}

// GetByID получает пользователя по ID
func (r *userRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail получает пользователя по email
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update обновляет пользователя
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// List получает всех пользователей в порядке создания
func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at").Find(&users).Error
	return users, err
}

// ListByRole получает пользователей по роли
func (r *userRepository) ListByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("created_at").Find(&users).Error
	return users, err
}

// ListByGroup получает студентов указанной группы
func (r *userRepository) ListByGroup(group string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("student_group = ? AND role = ?", group, models.RoleStudent).
		Order("created_at").Find(&users).Error
	return users, err
}

// FirstApprovedByRole получает первого одобренного пользователя с ролью
// (используется демо-входом по роли)
func (r *userRepository) FirstApprovedByRole(role models.Role) (*models.User, error) {
	var user models.User
	err := r.db.Where("role = ? AND approved = ?", role, true).
		Order("created_at").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists проверяет, занят ли email одобренным пользователем
func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
