package main

import (
	"fmt"
	"log"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/config"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/handlers"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/database"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/storage"
	"github.com/KSJEJWI8282/electronic-practice-diary/pkg/telegram"

	"github.com/gin-gonic/gin"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Подключаемся к базе данных
	db, err := database.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Заполняем пустую базу набором данных по умолчанию
	if err := db.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Инициализируем файловое хранилище
	fileStorage, err := storage.NewStorage(cfg.UploadPath, cfg.MaxFileSize)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Создаем репозитории
	userRepo := repository.NewUserRepository(db.DB)
	regRepo := repository.NewRegistrationRepository(db.DB)
	diaryRepo := repository.NewDiaryRepository(db.DB)
	fileRepo := repository.NewFileRepository(db.DB)
	practiceRepo := repository.NewPracticeRepository(db.DB)
	templateRepo := repository.NewTemplateRepository(db.DB)
	assignedRepo := repository.NewAssignedTestRepository(db.DB)
	resultRepo := repository.NewTestResultRepository(db.DB)
	gradeRepo := repository.NewGradeRepository(db.DB)
	notificationRepo := repository.NewNotificationRepository(db.DB)
	activityRepo := repository.NewActivityRepository(db.DB)
	settingsRepo := repository.NewSettingsRepository(db.DB)

	// Отправитель Telegram-уведомлений читает конфигурацию из базы
	notifier := telegram.NewNotifier(settingsRepo.GetTelegram)

	// Создаем сервисы
	authService := services.NewAuthService(userRepo, settingsRepo, cfg.JWTSecret, cfg.JWTExpiration)
	regService := services.NewRegistrationService(db.DB, regRepo, userRepo, notifier)
	diaryService := services.NewDiaryService(db.DB, diaryRepo, practiceRepo, userRepo, notifier)
	fileService := services.NewFileService(db.DB, fileRepo, practiceRepo, userRepo, fileStorage, notifier)
	testService := services.NewTestService(db.DB, templateRepo, assignedRepo, resultRepo, userRepo, notifier)
	gradeService := services.NewGradeService(db.DB, gradeRepo, userRepo, notifier)
	notificationService := services.NewNotificationService(notificationRepo, activityRepo)
	settingsService := services.NewSettingsService(settingsRepo, db.Reset)
	statsService := services.NewStatsService(userRepo, regRepo, diaryRepo, fileRepo, assignedRepo, resultRepo)

	// Создаем обработчики
	authHandler := handlers.NewAuthHandler(authService, fileStorage)
	regHandler := handlers.NewRegistrationHandler(regService)
	diaryHandler := handlers.NewDiaryHandler(diaryService)
	fileHandler := handlers.NewFileHandler(fileService)
	testHandler := handlers.NewTestHandler(testService)
	gradeHandler := handlers.NewGradeHandler(gradeService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, statsService)

	router := gin.Default()
	router.Use(handlers.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Публичные маршруты
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/login-as", authHandler.LoginAs)
		api.POST("/auth/register", regHandler.Submit)

		// Маршруты с авторизацией
		auth := api.Group("")
		auth.Use(handlers.AuthMiddleware(authService))
		{
			auth.GET("/profile", authHandler.GetProfile)
			auth.PUT("/profile", authHandler.UpdateProfile)
			auth.POST("/profile/avatar", authHandler.UploadAvatar)
			auth.GET("/settings/app", authHandler.GetAppSettings)
			auth.PUT("/settings/app", authHandler.UpdateAppSettings)

			auth.GET("/notifications", notificationHandler.List)
			auth.GET("/notifications/unread", notificationHandler.UnreadCount)
			auth.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			auth.PUT("/notifications/read-all", notificationHandler.MarkAllRead)

			auth.GET("/practices", diaryHandler.ListPractices)
			auth.GET("/diary", diaryHandler.ListEntries)
			auth.GET("/files", fileHandler.List)
			auth.GET("/grades", gradeHandler.List)

			// Студенты
			student := auth.Group("")
			student.Use(handlers.RequireRoles(models.RoleStudent))
			{
				student.POST("/diary", diaryHandler.AddEntry)
				student.PUT("/diary/:id", diaryHandler.UpdateEntry)
				student.DELETE("/diary/:id", diaryHandler.DeleteEntry)

				student.POST("/files", fileHandler.Upload)
				student.DELETE("/files/:id", fileHandler.Delete)

				student.GET("/tests/my", testHandler.ListMine)
				student.POST("/tests/:id/submit", testHandler.Submit)
				student.GET("/tests/results/my", testHandler.ListMyResults)
			}

			// Руководители
			supervisor := auth.Group("")
			supervisor.Use(handlers.RequireRoles(models.RoleSupervisor))
			{
				supervisor.PUT("/diary/:id/confirm", diaryHandler.Confirm)
				supervisor.PUT("/diary/confirm-all", diaryHandler.ConfirmAll)
				supervisor.PUT("/diary/:id/comment", diaryHandler.Comment)
				supervisor.PUT("/diary/:id/rating", diaryHandler.Rate)

				supervisor.PUT("/files/:id/status", fileHandler.UpdateStatus)
			}

			// Преподаватели
			teacher := auth.Group("")
			teacher.Use(handlers.RequireRoles(models.RoleTeacher))
			{
				teacher.POST("/templates", testHandler.CreateTemplate)
				teacher.GET("/templates", testHandler.ListTemplates)
				teacher.PUT("/templates/:id", testHandler.UpdateTemplate)
				teacher.POST("/templates/:id/duplicate", testHandler.DuplicateTemplate)
				teacher.DELETE("/templates/:id", testHandler.DeleteTemplate)

				teacher.POST("/tests/assign", testHandler.Assign)
				teacher.GET("/tests", testHandler.ListAssigned)
				teacher.GET("/tests/:id", testHandler.GetAssigned)
				teacher.GET("/tests/:id/results", testHandler.ListResults)
			}

			// Руководители и преподаватели
			staff := auth.Group("")
			staff.Use(handlers.RequireRoles(models.RoleSupervisor, models.RoleTeacher))
			{
				staff.GET("/users", authHandler.ListUsers)

				staff.GET("/registrations", regHandler.List)
				staff.PUT("/registrations/:id/approve", regHandler.Approve)
				staff.PUT("/registrations/:id/reject", regHandler.Reject)

				staff.POST("/grades", gradeHandler.Add)
				staff.PUT("/grades/:id", gradeHandler.Update)
				staff.DELETE("/grades/:id", gradeHandler.Delete)

				staff.GET("/activity", notificationHandler.Activity)
				staff.GET("/stats", settingsHandler.GetStats)

				staff.GET("/settings/telegram", settingsHandler.GetTelegram)
				staff.PUT("/settings/telegram", settingsHandler.UpdateTelegram)
				staff.POST("/settings/reset", settingsHandler.Reset)
			}
		}
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
