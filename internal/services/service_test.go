package services

import (
	"testing"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/telegram"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB открывает чистую базу в памяти с полной схемой
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PendingRegistration{},
		&models.Practice{},
		&models.DiaryEntry{},
		&models.UploadedFile{},
		&models.TestTemplate{},
		&models.AssignedTest{},
		&models.TestResult{},
		&models.Grade{},
		&models.Notification{},
		&models.ActivityLog{},
		&models.TelegramSettings{},
		&models.AppSettings{},
	))

	return db
}

// newTestNotifier возвращает отправителя с выключенной интеграцией
func newTestNotifier() *telegram.Notifier {
	return telegram.NewNotifier(func() (*models.TelegramSettings, error) {
		settings := models.DefaultTelegramSettings()
		return &settings, nil
	})
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.Role, group, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:             uuid.New(),
		Name:           name,
		Role:           role,
		Group:          group,
		Email:          email,
		RegisteredDate: "2024-09-01",
		Approved:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPractice(t *testing.T, db *gorm.DB, group string, supervisorID uuid.UUID) *models.Practice {
	t.Helper()

	practice := &models.Practice{
		ID:           uuid.New(),
		Type:         "Учебная",
		Title:        "Учебная практика",
		StartDate:    "2025-09-01",
		EndDate:      "2025-09-14",
		Group:        group,
		SupervisorID: supervisorID,
		Status:       models.PracticeActive,
	}
	require.NoError(t, db.Create(practice).Error)
	return practice
}
