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

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(
		repository.NewNotificationRepository(db),
		repository.NewActivityRepository(db),
	)
}

func TestUnreadCountAndMarkAllRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Create(&models.Notification{
			UserID:  user.ID,
			Title:   "Тест",
			Message: "сообщение",
			Type:    models.NotificationInfo,
		}))
	}

	count, err := svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, svc.MarkAllRead(user.ID))

	count, err = svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkReadSingle(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	notification := &models.Notification{
		UserID:  user.ID,
		Title:   "Часы подтверждены",
		Message: "Руководитель подтвердил 6 ч",
		Type:    models.NotificationSuccess,
	}
	require.NoError(t, svc.Create(notification))

	require.NoError(t, svc.MarkRead(notification.ID))

	list, err := svc.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)
}

func TestMarkReadMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	err := svc.MarkRead(uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestActivityLogFiltering(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	require.NoError(t, svc.LogActivity(user, "Добавил запись", "Дневник практики", models.ActivityDiary))
	require.NoError(t, svc.LogActivity(user, "Прошёл тест", "Охрана труда — 80%", models.ActivityTest))
	require.NoError(t, svc.LogActivity(user, "Загрузил файл", "Отчёт.pdf", models.ActivityFile))

	all, err := svc.ListActivity(50)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tests, err := svc.ListActivityByType(models.ActivityTest, 50)
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, "Прошёл тест", tests[0].Action)

	limited, err := svc.ListActivity(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
