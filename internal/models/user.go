package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateFormat формат дат предметной области (день без времени)
const DateFormat = "2006-01-02"

// Role определяет роли пользователей
type Role string

const (
	RoleStudent    Role = "student"
	RoleSupervisor Role = "supervisor"
	RoleTeacher    Role = "teacher"
)

// Valid проверяет, что роль известна системе
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleSupervisor, RoleTeacher:
		return true
	}
	return false
}

// User представляет пользователя системы
type User struct {
	ID             uuid.UUID      `json:"id" gorm:"type:text;primary_key"`
	Name           string         `json:"name" gorm:"not null"`
	Role           Role           `json:"role" gorm:"type:varchar(20);not null"`
	Group          string         `json:"group,omitempty" gorm:"column:student_group"`
	Email          string         `json:"email" gorm:"uniqueIndex;not null"`
	Avatar         string         `json:"avatar,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	TelegramID     string         `json:"telegram_id,omitempty"`
	RegisteredDate string         `json:"registered_date"`
	Approved       bool           `json:"approved" gorm:"default:false"`
	ApprovedBy     *uuid.UUID     `json:"approved_by,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// RegistrationStatus определяет статусы заявок на регистрацию
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// PendingRegistration представляет заявку на регистрацию
type PendingRegistration struct {
	ID          uuid.UUID          `json:"id" gorm:"type:text;primary_key"`
	Name        string             `json:"name" gorm:"not null"`
	Email       string             `json:"email" gorm:"not null"`
	Password    string             `json:"-" gorm:"not null"` // принимается при регистрации, но при входе не проверяется
	Role        Role               `json:"role" gorm:"type:varchar(20);not null"`
	Group       string             `json:"group,omitempty" gorm:"column:student_group"`
	RequestDate string             `json:"request_date"`
	Status      RegistrationStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CanApprove проверяет, может ли approver одобрить заявку с ролью target.
// Руководители одобряют студентов и преподавателей, преподаватели — только студентов.
func CanApprove(approver, target Role) bool {
	switch approver {
	case RoleSupervisor:
		return target == RoleStudent || target == RoleTeacher
	case RoleTeacher:
		return target == RoleStudent
	}
	return false
}
