package models

import "errors"

// Ошибки предметной области. Обработчики переводят их в HTTP-статусы.
var (
	ErrNotFound         = errors.New("record not found")
	ErrEmailTaken       = errors.New("email is already registered")
	ErrForbidden        = errors.New("operation is not allowed for this role")
	ErrAlreadyCompleted = errors.New("test is already completed by this student")
	ErrEntryConfirmed   = errors.New("confirmed diary entry cannot be deleted")
	ErrFileProcessed    = errors.New("processed file cannot be deleted")
	ErrNotOwner         = errors.New("record belongs to another user")
)
