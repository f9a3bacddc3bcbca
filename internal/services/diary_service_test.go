package services

import (
	"testing"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiaryService(db *gorm.DB) *DiaryService {
	return NewDiaryService(
		db,
		repository.NewDiaryRepository(db),
		repository.NewPracticeRepository(db),
		repository.NewUserRepository(db),
		newTestNotifier(),
	)
}

func TestAddEntry(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	entry, err := svc.AddEntry(student, AddEntryInput{
		PracticeID:  practice.ID,
		Date:        "2025-09-01",
		Description: "Ознакомление с предприятием",
		Hours:       6,
	})
	require.NoError(t, err)

	stored, err := repository.NewDiaryRepository(db).GetByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, stored.StudentID)
	assert.Equal(t, 6, stored.Hours)
	assert.False(t, stored.Confirmed)

	// Руководитель практики получает уведомление
	notifications, err := repository.NewNotificationRepository(db).ListByUser(supervisor.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Новая запись", notifications[0].Title)
}

func TestAddEntryUnknownPractice(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	_, err := svc.AddEntry(student, AddEntryInput{
		PracticeID:  uuid.New(),
		Date:        "2025-09-01",
		Description: "Запись в никуда",
		Hours:       6,
	})
	assert.Error(t, err)
}

func TestUpdateEntryOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	other := createUser(t, db, "Петрова Мария", models.RoleStudent, "ИС-922", "petrova@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	entry, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-01", Description: "Первый день", Hours: 6,
	})
	require.NoError(t, err)

	hours := 8
	_, err = svc.UpdateEntry(other, entry.ID, EntryUpdate{Hours: &hours})
	assert.ErrorIs(t, err, models.ErrNotOwner)

	updated, err := svc.UpdateEntry(student, entry.ID, EntryUpdate{Hours: &hours})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Hours)
}

func TestConfirmHoursIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	entry, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-01", Description: "Первый день", Hours: 6,
	})
	require.NoError(t, err)

	confirmed, err := svc.ConfirmHours(supervisor, entry.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)

	notifRepo := repository.NewNotificationRepository(db)
	before, err := notifRepo.ListByUser(student.ID)
	require.NoError(t, err)

	// Повторное подтверждение не ошибка и не порождает дублей уведомлений
	_, err = svc.ConfirmHours(supervisor, entry.ID)
	require.NoError(t, err)

	after, err := notifRepo.ListByUser(student.ID)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestDeleteEntryRules(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	other := createUser(t, db, "Петрова Мария", models.RoleStudent, "ИС-922", "petrova@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	entry, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-01", Description: "Первый день", Hours: 6,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteEntry(other, entry.ID), models.ErrNotOwner)

	_, err = svc.ConfirmHours(supervisor, entry.ID)
	require.NoError(t, err)

	// Подтвержденную запись удалить нельзя
	assert.ErrorIs(t, svc.DeleteEntry(student, entry.ID), models.ErrEntryConfirmed)

	second, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-02", Description: "Второй день", Hours: 7,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(student, second.ID))
	_, err = repository.NewDiaryRepository(db).GetByID(second.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConfirmAllSkipsProcessed(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	first, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-01", Description: "Первый день", Hours: 6,
	})
	require.NoError(t, err)
	second, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-02", Description: "Второй день", Hours: 7,
	})
	require.NoError(t, err)

	_, err = svc.ConfirmHours(supervisor, first.ID)
	require.NoError(t, err)

	confirmed, err := svc.ConfirmAll(supervisor, []uuid.UUID{first.ID, second.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 1, confirmed)
}

func TestAddCommentNotifiesStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	entry, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-01", Description: "Первый день", Hours: 6,
	})
	require.NoError(t, err)

	updated, err := svc.AddComment(supervisor, entry.ID, "Хорошее начало!")
	require.NoError(t, err)
	assert.Equal(t, "Хорошее начало!", updated.Comment)

	notifications, err := repository.NewNotificationRepository(db).ListByUser(student.ID)
	require.NoError(t, err)
	require.NotEmpty(t, notifications)
	assert.Equal(t, "Новый комментарий", notifications[0].Title)
}

func TestAddRatingBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newDiaryService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")
	student := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	practice := createPractice(t, db, "ИС-922", supervisor.ID)

	entry, err := svc.AddEntry(student, AddEntryInput{
		PracticeID: practice.ID, Date: "2025-09-01", Description: "Первый день", Hours: 6,
	})
	require.NoError(t, err)

	_, err = svc.AddRating(supervisor, entry.ID, 0)
	assert.Error(t, err)
	_, err = svc.AddRating(supervisor, entry.ID, 6)
	assert.Error(t, err)

	rated, err := svc.AddRating(supervisor, entry.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rated.Rating)
}
