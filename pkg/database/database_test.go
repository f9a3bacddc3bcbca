package database

import (
	"path/filepath"
	"testing"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "diary.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeedPopulatesDefaults(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(t, db.Seed())

	var users int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(7), users)

	var practices int64
	require.NoError(t, db.DB.Model(&models.Practice{}).Count(&practices).Error)
	assert.Equal(t, int64(4), practices)

	var pending int64
	require.NoError(t, db.DB.Model(&models.PendingRegistration{}).
		Where("status = ?", models.RegistrationPending).Count(&pending).Error)
	assert.Equal(t, int64(2), pending)

	// Содержимое шаблона переживает сериализацию в JSON-колонку
	var template models.TestTemplate
	require.NoError(t, db.DB.First(&template, "title = ?", "Охрана труда и техника безопасности").Error)
	require.Len(t, template.Questions, 5)
	assert.Equal(t, 1, template.Questions[0].CorrectAnswer)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(t, db.Seed())
	require.NoError(t, db.Seed())

	var users int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(7), users)
}

func TestResetRestoresDefaults(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(t, db.Seed())

	// Портим данные
	require.NoError(t, db.DB.Create(&models.User{
		ID:    uuid.New(),
		Name:  "Лишний пользователь",
		Role:  models.RoleStudent,
		Email: "extra@college.ru",
	}).Error)

	require.NoError(t, db.Reset())

	var users int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(7), users)

	var extra int64
	require.NoError(t, db.DB.Model(&models.User{}).Where("email = ?", "extra@college.ru").Count(&extra).Error)
	assert.Equal(t, int64(0), extra)
}
