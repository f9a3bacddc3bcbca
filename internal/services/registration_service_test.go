package services

import (
	"testing"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRegistrationService(db *gorm.DB) *RegistrationService {
	return NewRegistrationService(
		db,
		repository.NewRegistrationRepository(db),
		repository.NewUserRepository(db),
		newTestNotifier(),
	)
}

func TestSubmitRegistration(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)

	reg, err := svc.Submit(SubmitInput{
		Name:     "Новиков Артём Игоревич",
		Email:    "novikov@gmail.com",
		Password: "123456",
		Role:     models.RoleStudent,
		Group:    "ИС-924",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, reg.Status)
	assert.NotEmpty(t, reg.RequestDate)
}

func TestSubmitNotifiesSupervisors(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")

	_, err := svc.Submit(SubmitInput{
		Name:     "Новиков Артём",
		Email:    "novikov@gmail.com",
		Password: "123456",
		Role:     models.RoleStudent,
		Group:    "ИС-924",
	})
	require.NoError(t, err)

	notifications, err := repository.NewNotificationRepository(db).ListByUser(supervisor.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Заявка на регистрацию", notifications[0].Title)
}

func TestSubmitDuplicateOfApprovedUser(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	createUser(t, db, "Иванов Алексей", models.RoleStudent, "ИС-922", "ivanov@college.ru")

	_, err := svc.Submit(SubmitInput{
		Name:     "Самозванец",
		Email:    "ivanov@college.ru",
		Password: "123456",
		Role:     models.RoleStudent,
	})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestSubmitDuplicateOfPendingRegistration(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)

	_, err := svc.Submit(SubmitInput{
		Name: "Новиков Артём", Email: "novikov@gmail.com", Password: "123456", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Submit(SubmitInput{
		Name: "Новиков А.", Email: "novikov@gmail.com", Password: "654321", Role: models.RoleStudent,
	})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestSubmitAfterRejectionAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")

	reg, err := svc.Submit(SubmitInput{
		Name: "Новиков Артём", Email: "novikov@gmail.com", Password: "123456", Role: models.RoleStudent,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Reject(reg.ID, supervisor))

	// Отклоненная заявка не блокирует повторную подачу
	_, err = svc.Submit(SubmitInput{
		Name: "Новиков Артём", Email: "novikov@gmail.com", Password: "123456", Role: models.RoleStudent,
	})
	assert.NoError(t, err)
}

func TestApproveCreatesUser(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")

	reg, err := svc.Submit(SubmitInput{
		Name: "Новиков Артём Игоревич", Email: "novikov@gmail.com", Password: "123456",
		Role: models.RoleStudent, Group: "ИС-924",
	})
	require.NoError(t, err)

	user, err := svc.Approve(reg.ID, supervisor)
	require.NoError(t, err)

	assert.True(t, user.Approved)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "ИС-924", user.Group)
	assert.NotEqual(t, reg.ID, user.ID)
	require.NotNil(t, user.ApprovedBy)
	assert.Equal(t, supervisor.ID, *user.ApprovedBy)

	stored, err := repository.NewRegistrationRepository(db).GetByID(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationApproved, stored.Status)

	// Вход доступен сразу после одобрения
	authSvc := newAuthService(db)
	result, err := authSvc.Login("novikov@gmail.com", "что угодно")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestApproveTwiceFails(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")

	reg, err := svc.Submit(SubmitInput{
		Name: "Новиков Артём", Email: "novikov@gmail.com", Password: "123456", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Approve(reg.ID, supervisor)
	require.NoError(t, err)

	_, err = svc.Approve(reg.ID, supervisor)
	assert.Error(t, err)
}

func TestTeacherCannotApproveTeacher(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	teacher := createUser(t, db, "Морозов Игорь", models.RoleTeacher, "", "morozov@college.ru")

	reg, err := svc.Submit(SubmitInput{
		Name: "Фёдорова Светлана", Email: "fedorova@gmail.com", Password: "123456", Role: models.RoleTeacher,
	})
	require.NoError(t, err)

	_, err = svc.Approve(reg.ID, teacher)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestTeacherCanApproveStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	teacher := createUser(t, db, "Морозов Игорь", models.RoleTeacher, "", "morozov@college.ru")

	reg, err := svc.Submit(SubmitInput{
		Name: "Новиков Артём", Email: "novikov@gmail.com", Password: "123456", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	user, err := svc.Approve(reg.ID, teacher)
	require.NoError(t, err)
	assert.True(t, user.Approved)
}

func TestRejectDoesNotCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")

	reg, err := svc.Submit(SubmitInput{
		Name: "Новиков Артём", Email: "novikov@gmail.com", Password: "123456", Role: models.RoleStudent,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Reject(reg.ID, supervisor))

	stored, err := repository.NewRegistrationRepository(db).GetByID(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationRejected, stored.Status)

	_, err = repository.NewUserRepository(db).GetByEmail("novikov@gmail.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListPendingForTeacherSkipsTeacherRequests(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	teacher := createUser(t, db, "Морозов Игорь", models.RoleTeacher, "", "morozov@college.ru")
	supervisor := createUser(t, db, "Козлова Анна", models.RoleSupervisor, "", "kozlova@college.ru")

	_, err := svc.Submit(SubmitInput{Name: "Студент", Email: "s@gmail.com", Password: "123456", Role: models.RoleStudent})
	require.NoError(t, err)
	_, err = svc.Submit(SubmitInput{Name: "Преподаватель", Email: "t@gmail.com", Password: "123456", Role: models.RoleTeacher})
	require.NoError(t, err)

	forTeacher, err := svc.ListPendingFor(teacher)
	require.NoError(t, err)
	assert.Len(t, forTeacher, 1)
	assert.Equal(t, models.RoleStudent, forTeacher[0].Role)

	forSupervisor, err := svc.ListPendingFor(supervisor)
	require.NoError(t, err)
	assert.Len(t, forSupervisor, 2)
}
