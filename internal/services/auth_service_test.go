package services

import (
	"testing"
	"time"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSettingsRepository(db),
		"test-secret",
		time.Hour,
	)
}

func TestLoginIgnoresPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	first, err := svc.Login("ivanov@college.ru", "правильный")
	require.NoError(t, err)

	second, err := svc.Login("ivanov@college.ru", "совсем другой")
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.NotEmpty(t, second.Token)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Login("nobody@college.ru", "123456")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLoginUnapprovedUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &models.User{
		ID:    uuid.New(),
		Name:  "Новиков Артём",
		Role:  models.RoleStudent,
		Email: "novikov@gmail.com",
	}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.Login("novikov@gmail.com", "123456")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLoginAsPicksApprovedUserOfRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")

	result, err := svc.LoginAs(models.RoleSupervisor)
	require.NoError(t, err)
	assert.Equal(t, supervisor.ID, result.User.ID)
	assert.Equal(t, models.RoleSupervisor, result.User.Role)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	result, err := svc.Login("ivanov@college.ru", "123456")
	require.NoError(t, err)

	parsed, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.ID)
}

func TestValidateTokenGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestUpdateProfileVisibleOnNextLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	name := "Иванов Алексей Петрович"
	phone := "+7 (999) 111-22-33"
	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	// Изменение записано в каноническую запись, а не в копию сессии
	result, err := svc.Login("ivanov@college.ru", "123456")
	require.NoError(t, err)
	assert.Equal(t, name, result.User.Name)
	assert.Equal(t, phone, result.User.Phone)
}

func TestAppSettingsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	settings, err := svc.GetAppSettings()
	require.NoError(t, err)
	assert.Equal(t, "light", settings.Theme)

	updated, err := svc.UpdateAppSettings("dark", "kz")
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "kz", updated.Language)

	again, err := svc.GetAppSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", again.Theme)
}
