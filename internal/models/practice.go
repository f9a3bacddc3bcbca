package models

import (
	"time"

	"github.com/google/uuid"
)

// PracticeStatus определяет статусы практик
type PracticeStatus string

const (
	PracticeActive    PracticeStatus = "active"
	PracticeCompleted PracticeStatus = "completed"
	PracticeUpcoming  PracticeStatus = "upcoming"
)

// Practice представляет период практики (справочные данные, через API не изменяются)
type Practice struct {
	ID           uuid.UUID      `json:"id" gorm:"type:text;primary_key"`
	Type         string         `json:"type" gorm:"not null"`
	Title        string         `json:"title" gorm:"not null"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	Group        string         `json:"group" gorm:"column:student_group"`
	SupervisorID uuid.UUID      `json:"supervisor_id" gorm:"type:text"`
	Status       PracticeStatus `json:"status" gorm:"type:varchar(10)"`
	CreatedAt    time.Time      `json:"created_at"`
}

// DiaryEntry представляет запись дневника практики за один день
type DiaryEntry struct {
	ID          uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	StudentID   uuid.UUID `json:"student_id" gorm:"type:text;not null;index"`
	PracticeID  uuid.UUID `json:"practice_id" gorm:"type:text;not null"`
	Date        string    `json:"date" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Hours       int       `json:"hours" gorm:"not null"` // ожидается 1-12
	Confirmed   bool      `json:"confirmed" gorm:"default:false"`
	Comment     string    `json:"comment,omitempty"`
	Rating      int       `json:"rating,omitempty"` // 1-5, 0 — нет оценки
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FileStatus определяет статусы загруженных файлов
type FileStatus string

const (
	FilePending  FileStatus = "pending"
	FileReviewed FileStatus = "reviewed"
	FileApproved FileStatus = "approved"
	FileRejected FileStatus = "rejected"
)

// UploadedFile представляет загруженный студентом файл
type UploadedFile struct {
	ID            uuid.UUID  `json:"id" gorm:"type:text;primary_key"`
	StudentID     uuid.UUID  `json:"student_id" gorm:"type:text;not null;index"`
	StudentName   string     `json:"student_name,omitempty"`
	PracticeID    uuid.UUID  `json:"practice_id" gorm:"type:text"`
	Name          string     `json:"name" gorm:"not null"`
	Type          string     `json:"type"`
	UploadDate    string     `json:"upload_date"`
	Size          string     `json:"size"`
	Status        FileStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`
	ReviewComment string     `json:"review_comment,omitempty"`
	FilePath      string     `json:"-"` // путь в файловом хранилище, наружу не отдается
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
