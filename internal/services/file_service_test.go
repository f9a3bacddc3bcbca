package services

import (
	"testing"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFileService(t *testing.T, db *gorm.DB) *FileService {
	t.Helper()

	fileStorage, err := storage.NewStorage(t.TempDir(), 50*1024*1024)
	require.NoError(t, err)

	return NewFileService(
		db,
		repository.NewFileRepository(db),
		repository.NewPracticeRepository(db),
		repository.NewUserRepository(db),
		fileStorage,
		newTestNotifier(),
	)
}

func createFile(t *testing.T, db *gorm.DB, student *models.User, practiceID uuid.UUID, status models.FileStatus) *models.UploadedFile {
	t.Helper()

	file := &models.UploadedFile{
		ID:          uuid.New(),
		StudentID:   student.ID,
		StudentName: student.Name,
		PracticeID:  practiceID,
		Name:        "Отчёт_неделя_1.pdf",
		Type:        "application/pdf",
		UploadDate:  "2025-09-07",
		Size:        "2.4 МБ",
		Status:      status,
	}
	require.NoError(t, repository.NewFileRepository(db).Create(file))
	return file
}

func TestUpdateFileStatusNotifiesStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newFileService(t, db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)
	file := createFile(t, db, student, practice.ID, models.FilePending)

	updated, err := svc.UpdateStatus(supervisor, file.ID, models.FileApproved, "Отчёт принят")
	require.NoError(t, err)
	assert.Equal(t, models.FileApproved, updated.Status)
	assert.Equal(t, "Отчёт принят", updated.ReviewComment)

	notifications, err := repository.NewNotificationRepository(db).ListByUser(student.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Статус файла обновлен", notifications[0].Title)
}

func TestDeleteFileRules(t *testing.T) {
	db := newTestDB(t)
	svc := newFileService(t, db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	other := createUser(t, db, "Петрова Мария", models.RoleStudent, "ИС-922", "petrova@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	pending := createFile(t, db, student, practice.ID, models.FilePending)
	approved := createFile(t, db, student, practice.ID, models.FileApproved)

	assert.ErrorIs(t, svc.Delete(other, pending.ID), models.ErrNotOwner)
	assert.ErrorIs(t, svc.Delete(student, approved.ID), models.ErrFileProcessed)

	require.NoError(t, svc.Delete(student, pending.ID))
	_, err := repository.NewFileRepository(db).GetByID(pending.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListFilesByStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newFileService(t, db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	other := createUser(t, db, "Петрова Мария", models.RoleStudent, "ИС-922", "petrova@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	createFile(t, db, student, practice.ID, models.FilePending)
	createFile(t, db, other, practice.ID, models.FilePending)

	mine, err := svc.ListByStudent(student.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
