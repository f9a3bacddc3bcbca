package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database представляет подключение к базе данных
type Database struct {
	DB *gorm.DB
}

// NewDatabase создает новое подключение к базе данных
func NewDatabase(dbPath string) (*Database, error) {
	// Создаем директорию для базы данных если она не существует
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

// Migrate выполняет миграцию базы данных
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
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
	)
}

// Close закрывает подключение к базе данных
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Reset удаляет все данные и заново заполняет базу набором по умолчанию
func (d *Database) Reset() error {
	tables := []interface{}{
		&models.ActivityLog{},
		&models.Notification{},
		&models.Grade{},
		&models.TestResult{},
		&models.AssignedTest{},
		&models.TestTemplate{},
		&models.UploadedFile{},
		&models.DiaryEntry{},
		&models.Practice{},
		&models.PendingRegistration{},
		&models.User{},
		&models.TelegramSettings{},
		&models.AppSettings{},
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
				return fmt.Errorf("failed to wipe table: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return d.Seed()
}

// Seed заполняет пустую базу демонстрационным набором данных. Если
// пользователи уже есть, ничего не делает.
func (d *Database) Seed() error {
	var count int64
	if err := d.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	return d.DB.Transaction(func(tx *gorm.DB) error {
		ivanov := seedUser("Иванов Алексей Петрович", models.RoleStudent, "ИС-922", "ivanov@college.ru", "+7 (999) 111-22-33", "@ivanov_alex", "2024-09-01")
		petrova := seedUser("Петрова Мария Сергеевна", models.RoleStudent, "ИС-922", "petrova@college.ru", "+7 (999) 222-33-44", "@petrova_m", "2024-09-01")
		sidorov := seedUser("Сидоров Дмитрий Игоревич", models.RoleStudent, "ИС-923", "sidorov@college.ru", "+7 (999) 333-44-55", "", "2024-09-01")
		kuznetsova := seedUser("Кузнецова Елена Андреевна", models.RoleStudent, "ИС-922", "kuznetsova@college.ru", "+7 (999) 444-55-66", "", "2024-09-01")
		vasilev := seedUser("Васильев Никита Олегович", models.RoleStudent, "ИС-923", "vasilev@college.ru", "", "", "2024-09-01")
		kozlova := seedUser("Козлова Анна Владимировна", models.RoleSupervisor, "", "kozlova@college.ru", "+7 (999) 555-66-77", "@kozlova_av", "2023-01-15")
		morozov := seedUser("Морозов Игорь Николаевич", models.RoleTeacher, "", "morozov@college.ru", "+7 (999) 666-77-88", "@morozov_in", "2022-08-20")

		users := []*models.User{ivanov, petrova, sidorov, kuznetsova, vasilev, kozlova, morozov}
		for _, u := range users {
			if err := tx.Create(u).Error; err != nil {
				return fmt.Errorf("failed to seed user: %w", err)
			}
		}

		registrations := []models.PendingRegistration{
			{ID: uuid.New(), Name: "Новиков Артём Игоревич", Email: "novikov@gmail.com", Password: "123456", Role: models.RoleStudent, Group: "ИС-924", RequestDate: "2025-09-10", Status: models.RegistrationPending},
			{ID: uuid.New(), Name: "Фёдорова Светлана Юрьевна", Email: "fedorova@gmail.com", Password: "123456", Role: models.RoleTeacher, RequestDate: "2025-09-12", Status: models.RegistrationPending},
		}
		if err := tx.Create(&registrations).Error; err != nil {
			return fmt.Errorf("failed to seed registrations: %w", err)
		}

		p1 := &models.Practice{ID: uuid.New(), Type: "Учебная", Title: "Учебная практика (ознакомительная)", StartDate: "2025-09-01", EndDate: "2025-09-14", Group: "ИС-922", SupervisorID: kozlova.ID, Status: models.PracticeActive}
		p2 := &models.Practice{ID: uuid.New(), Type: "Производственная", Title: "Производственная практика (по профилю)", StartDate: "2025-10-01", EndDate: "2025-10-28", Group: "ИС-922", SupervisorID: kozlova.ID, Status: models.PracticeUpcoming}
		p3 := &models.Practice{ID: uuid.New(), Type: "Учебная", Title: "Учебная практика (IT-инфраструктура)", StartDate: "2025-11-01", EndDate: "2025-11-14", Group: "ИС-923", SupervisorID: kozlova.ID, Status: models.PracticeActive}
		p4 := &models.Practice{ID: uuid.New(), Type: "Преддипломная", Title: "Преддипломная практика", StartDate: "2026-03-01", EndDate: "2026-04-30", Group: "ИС-922", SupervisorID: kozlova.ID, Status: models.PracticeUpcoming}
		for _, p := range []*models.Practice{p1, p2, p3, p4} {
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("failed to seed practice: %w", err)
			}
		}

		entries := []models.DiaryEntry{
			{ID: uuid.New(), StudentID: ivanov.ID, PracticeID: p1.ID, Date: "2025-09-01", Description: "Ознакомление с предприятием. Прохождение инструктажа по технике безопасности. Знакомство с рабочим местом и коллективом.", Hours: 6, Confirmed: true, Comment: "Хорошее начало! Продолжайте в том же духе.", Rating: 5},
			{ID: uuid.New(), StudentID: ivanov.ID, PracticeID: p1.ID, Date: "2025-09-02", Description: "Изучение организационной структуры предприятия. Работа с документацией отдела. Настройка рабочего окружения.", Hours: 8, Confirmed: true},
			{ID: uuid.New(), StudentID: ivanov.ID, PracticeID: p1.ID, Date: "2025-09-03", Description: "Изучение информационных систем предприятия. Работа с базами данных. Анализ бизнес-процессов.", Hours: 7},
			{ID: uuid.New(), StudentID: ivanov.ID, PracticeID: p1.ID, Date: "2025-09-04", Description: "Разработка модуля отчётности. Тестирование функционала. Составление технической документации.", Hours: 8},
			{ID: uuid.New(), StudentID: ivanov.ID, PracticeID: p1.ID, Date: "2025-09-05", Description: "Оптимизация запросов к базе данных. Рефакторинг кода. Подготовка промежуточного отчёта.", Hours: 6},
			{ID: uuid.New(), StudentID: petrova.ID, PracticeID: p1.ID, Date: "2025-09-01", Description: "Первый день практики. Инструктаж. Знакомство с наставником и командой разработки.", Hours: 6, Confirmed: true, Comment: "Отличный старт!"},
			{ID: uuid.New(), StudentID: petrova.ID, PracticeID: p1.ID, Date: "2025-09-02", Description: "Изучение стека технологий компании. Настройка IDE и системы контроля версий.", Hours: 7, Confirmed: true},
			{ID: uuid.New(), StudentID: petrova.ID, PracticeID: p1.ID, Date: "2025-09-03", Description: "Работа с React и TypeScript. Создание компонентов пользовательского интерфейса.", Hours: 8},
			{ID: uuid.New(), StudentID: sidorov.ID, PracticeID: p3.ID, Date: "2025-11-01", Description: "Ознакомление с IT-инфраструктурой организации. Изучение сетевого оборудования.", Hours: 6},
			{ID: uuid.New(), StudentID: sidorov.ID, PracticeID: p3.ID, Date: "2025-11-02", Description: "Настройка виртуальных машин. Работа с VMware. Установка серверных ОС.", Hours: 8},
			{ID: uuid.New(), StudentID: kuznetsova.ID, PracticeID: p1.ID, Date: "2025-09-01", Description: "Ознакомление с рабочим местом. Получение доступа к системам предприятия.", Hours: 6, Confirmed: true},
			{ID: uuid.New(), StudentID: kuznetsova.ID, PracticeID: p1.ID, Date: "2025-09-02", Description: "Изучение корпоративной почты и системы документооборота. Работа с 1С.", Hours: 7},
		}
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to seed diary entries: %w", err)
		}

		files := []models.UploadedFile{
			{ID: uuid.New(), StudentID: ivanov.ID, StudentName: ivanov.Name, PracticeID: p1.ID, Name: "Отчёт_неделя_1.pdf", Type: "application/pdf", UploadDate: "2025-09-07", Size: "2.4 МБ", Status: models.FileApproved, ReviewComment: "Отчёт принят, хорошая работа."},
			{ID: uuid.New(), StudentID: ivanov.ID, StudentName: ivanov.Name, PracticeID: p1.ID, Name: "Скриншоты_работы.zip", Type: "application/zip", UploadDate: "2025-09-05", Size: "15.1 МБ", Status: models.FileReviewed},
			{ID: uuid.New(), StudentID: petrova.ID, StudentName: petrova.Name, PracticeID: p1.ID, Name: "Дневник_практики.docx", Type: "application/docx", UploadDate: "2025-09-03", Size: "1.8 МБ", Status: models.FilePending},
			{ID: uuid.New(), StudentID: petrova.ID, StudentName: petrova.Name, PracticeID: p1.ID, Name: "Презентация_проекта.pptx", Type: "application/pptx", UploadDate: "2025-09-06", Size: "5.2 МБ", Status: models.FilePending},
			{ID: uuid.New(), StudentID: sidorov.ID, StudentName: sidorov.Name, PracticeID: p3.ID, Name: "Схема_сети.png", Type: "image/png", UploadDate: "2025-11-02", Size: "3.7 МБ", Status: models.FilePending},
			{ID: uuid.New(), StudentID: kuznetsova.ID, StudentName: kuznetsova.Name, PracticeID: p1.ID, Name: "Итоговый_отчёт.pdf", Type: "application/pdf", UploadDate: "2025-09-10", Size: "4.1 МБ", Status: models.FilePending},
		}
		if err := tx.Create(&files).Error; err != nil {
			return fmt.Errorf("failed to seed files: %w", err)
		}

		t1 := seedSafetyTemplate(morozov.ID)
		t2 := seedSecurityTemplate(morozov.ID)
		t3 := seedInfraTemplate(morozov.ID)
		if err := tx.Create(&[]*models.TestTemplate{t1, t2, t3}).Error; err != nil {
			return fmt.Errorf("failed to seed templates: %w", err)
		}

		at1 := &models.AssignedTest{
			ID: uuid.New(), TemplateID: t1.ID, Title: "Охрана труда — ИС-922", Topic: t1.Topic,
			TopicMaterial: t1.TopicMaterial, Difficulty: t1.Difficulty, Questions: t1.Questions,
			AssignedTo: "ИС-922", AssignedBy: morozov.ID, AssignedDate: "2025-09-01", Deadline: "2025-09-07",
			TimeLimit: t1.TimeLimit, PassingScore: t1.PassingScore,
		}
		at2 := &models.AssignedTest{
			ID: uuid.New(), TemplateID: t2.ID, Title: "Информационная безопасность — ИС-922", Topic: t2.Topic,
			TopicMaterial: t2.TopicMaterial, Difficulty: t2.Difficulty, Questions: t2.Questions,
			AssignedTo: "ИС-922", AssignedBy: morozov.ID, AssignedDate: "2025-09-05", Deadline: "2025-09-14",
			TimeLimit: t2.TimeLimit, PassingScore: t2.PassingScore,
		}
		at3 := &models.AssignedTest{
			ID: uuid.New(), TemplateID: t3.ID, Title: "IT-инфраструктура — ИС-923", Topic: t3.Topic,
			TopicMaterial: t3.TopicMaterial, Difficulty: t3.Difficulty, Questions: t3.Questions,
			AssignedTo: "ИС-923", AssignedBy: morozov.ID, AssignedDate: "2025-11-01", Deadline: "2025-11-10",
			TimeLimit: t3.TimeLimit, PassingScore: t3.PassingScore,
		}
		if err := tx.Create(&[]*models.AssignedTest{at1, at2, at3}).Error; err != nil {
			return fmt.Errorf("failed to seed assigned tests: %w", err)
		}

		results := []models.TestResult{
			{ID: uuid.New(), TestID: at1.ID, StudentID: ivanov.ID, StudentName: ivanov.Name, Score: 4, TotalQuestions: 5, CompletedDate: "2025-09-03", Answers: models.IntList{1, 1, 1, 2, 0}, TimeSpent: 8},
			{ID: uuid.New(), TestID: at1.ID, StudentID: petrova.ID, StudentName: petrova.Name, Score: 5, TotalQuestions: 5, CompletedDate: "2025-09-02", Answers: models.IntList{1, 1, 1, 2, 2}, TimeSpent: 12},
			{ID: uuid.New(), TestID: at1.ID, StudentID: kuznetsova.ID, StudentName: kuznetsova.Name, Score: 3, TotalQuestions: 5, CompletedDate: "2025-09-04", Answers: models.IntList{1, 0, 1, 2, 0}, TimeSpent: 10},
			{ID: uuid.New(), TestID: at2.ID, StudentID: ivanov.ID, StudentName: ivanov.Name, Score: 4, TotalQuestions: 5, CompletedDate: "2025-09-10", Answers: models.IntList{1, 2, 1, 2, 1}, TimeSpent: 15},
		}
		if err := tx.Create(&results).Error; err != nil {
			return fmt.Errorf("failed to seed test results: %w", err)
		}

		grades := []models.Grade{
			{ID: uuid.New(), StudentID: ivanov.ID, Category: "Практика", Subcategory: "Дневник практики", Score: 85, MaxScore: 100, Date: "2025-09-07", Comment: "Хорошее ведение дневника", GivenBy: kozlova.ID},
			{ID: uuid.New(), StudentID: ivanov.ID, Category: "Тесты", Subcategory: "Охрана труда", Score: 80, MaxScore: 100, Date: "2025-09-03", GivenBy: morozov.ID},
			{ID: uuid.New(), StudentID: ivanov.ID, Category: "Практика", Subcategory: "Отчётность", Score: 90, MaxScore: 100, Date: "2025-09-07", Comment: "Отличный отчёт", GivenBy: kozlova.ID},
			{ID: uuid.New(), StudentID: petrova.ID, Category: "Тесты", Subcategory: "Охрана труда", Score: 100, MaxScore: 100, Date: "2025-09-02", GivenBy: morozov.ID},
			{ID: uuid.New(), StudentID: petrova.ID, Category: "Практика", Subcategory: "Дневник практики", Score: 92, MaxScore: 100, Date: "2025-09-05", GivenBy: kozlova.ID},
			{ID: uuid.New(), StudentID: kuznetsova.ID, Category: "Тесты", Subcategory: "Охрана труда", Score: 60, MaxScore: 100, Date: "2025-09-04", GivenBy: morozov.ID},
			{ID: uuid.New(), StudentID: sidorov.ID, Category: "Практика", Subcategory: "Дневник практики", Score: 75, MaxScore: 100, Date: "2025-11-03", GivenBy: kozlova.ID},
		}
		if err := tx.Create(&grades).Error; err != nil {
			return fmt.Errorf("failed to seed grades: %w", err)
		}

		notifications := []models.Notification{
			{ID: uuid.New(), UserID: ivanov.ID, Title: "Часы подтверждены", Message: "Руководитель подтвердил 6 часов за 01.09.2025", Type: models.NotificationSuccess, CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: ivanov.ID, Title: "Новый комментарий", Message: "Козлова А.В. оставила комментарий к записи от 01.09", Type: models.NotificationInfo, CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: kozlova.ID, Title: "Новая запись", Message: "Иванов А.П. добавил запись в дневник за 05.09", Type: models.NotificationInfo, CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: kozlova.ID, Title: "Заявка на регистрацию", Message: "Новиков А.И. запросил доступ к системе (студент)", Type: models.NotificationWarning, CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: morozov.ID, Title: "Тест пройден", Message: "Иванов А.П. прошёл тест \"Охрана труда\" — 80%", Type: models.NotificationSuccess, CreatedAt: time.Now()},
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return fmt.Errorf("failed to seed notifications: %w", err)
		}

		activity := []models.ActivityLog{
			{ID: uuid.New(), UserID: ivanov.ID, UserName: "Иванов А.П.", Action: "Добавил запись", Details: "Дневник практики, 05.09.2025", Timestamp: time.Now(), Type: models.ActivityDiary},
			{ID: uuid.New(), UserID: ivanov.ID, UserName: "Иванов А.П.", Action: "Загрузил файл", Details: "Отчёт_неделя_1.pdf", Timestamp: time.Now(), Type: models.ActivityFile},
			{ID: uuid.New(), UserID: kozlova.ID, UserName: "Козлова А.В.", Action: "Подтвердила часы", Details: "Иванов А.П., 01.09.2025 — 6ч", Timestamp: time.Now(), Type: models.ActivityDiary},
			{ID: uuid.New(), UserID: ivanov.ID, UserName: "Иванов А.П.", Action: "Прошёл тест", Details: "Охрана труда — 80%", Timestamp: time.Now(), Type: models.ActivityTest},
			{ID: uuid.New(), UserID: morozov.ID, UserName: "Морозов И.Н.", Action: "Назначил тест", Details: "Информационная безопасность → ИС-922", Timestamp: time.Now(), Type: models.ActivityTest},
		}
		if err := tx.Create(&activity).Error; err != nil {
			return fmt.Errorf("failed to seed activity log: %w", err)
		}

		return nil
	})
}

func seedUser(name string, role models.Role, group, email, phone, telegramID, registered string) *models.User {
	return &models.User{
		ID:             uuid.New(),
		Name:           name,
		Role:           role,
		Group:          group,
		Email:          email,
		Phone:          phone,
		TelegramID:     telegramID,
		RegisteredDate: registered,
		Approved:       true,
	}
}

func seedSafetyTemplate(createdBy uuid.UUID) *models.TestTemplate {
	return &models.TestTemplate{
		ID:          uuid.New(),
		Title:       "Охрана труда и техника безопасности",
		Topic:       "Охрана труда",
		Description: "Базовый тест по правилам охраны труда и технике безопасности на рабочем месте",
		TopicMaterial: "## Охрана труда и техника безопасности\n\n**Охрана труда** — система сохранения жизни и здоровья работников в процессе трудовой деятельности.\n\n### Виды инструктажей:\n1. Вводный — при приёме на работу\n2. Первичный — на рабочем месте\n3. Повторный — не реже 1 раза в 6 месяцев\n\n### При пожаре:\n1. Сообщить руководителю\n2. Вызвать пожарную службу (101)\n3. Эвакуироваться по плану",
		Difficulty:   models.DifficultyEasy,
		TimeLimit:    15,
		PassingScore: 70,
		CreatedBy:    &createdBy,
		Questions: models.QuestionList{
			{ID: uuid.NewString(), Text: "Что необходимо сделать в первую очередь при обнаружении пожара?", Options: []string{"Начать тушить самостоятельно", "Сообщить руководителю и вызвать пожарную службу", "Покинуть здание не предупреждая никого", "Продолжить работу"}, CorrectAnswer: 1, Explanation: "При пожаре необходимо немедленно сообщить руководителю и вызвать пожарную службу по номеру 101."},
			{ID: uuid.NewString(), Text: "Как часто проводится повторный инструктаж по технике безопасности?", Options: []string{"Раз в год", "Не реже 1 раза в 6 месяцев", "Только при приёме на работу", "Каждый месяц"}, CorrectAnswer: 1, Explanation: "Повторный инструктаж проводится не реже 1 раза в 6 месяцев."},
			{ID: uuid.NewString(), Text: "Что такое СИЗ?", Options: []string{"Система информационной защиты", "Средства индивидуальной защиты", "Стандарт измерения загрязнений", "Служба инженерной защиты"}, CorrectAnswer: 1},
			{ID: uuid.NewString(), Text: "Какое минимальное расстояние от глаз до монитора рекомендуется?", Options: []string{"20 см", "40 см", "50-70 см", "1 метр"}, CorrectAnswer: 2},
			{ID: uuid.NewString(), Text: "Кто несёт ответственность за соблюдение правил охраны труда?", Options: []string{"Только работодатель", "Только работник", "Работодатель и работник совместно", "Профсоюз"}, CorrectAnswer: 2},
		},
	}
}

func seedSecurityTemplate(createdBy uuid.UUID) *models.TestTemplate {
	return &models.TestTemplate{
		ID:          uuid.New(),
		Title:       "Основы информационной безопасности",
		Topic:       "Информационная безопасность",
		Description: "Тест по основам защиты информации и кибербезопасности",
		TopicMaterial: "## Основы информационной безопасности\n\n**Информационная безопасность** — состояние защищённости информации от несанкционированного доступа.\n\n### Правила безопасности:\n1. Сложные пароли (от 12 символов)\n2. Двухфакторная аутентификация (2FA)\n3. Обновление ПО\n4. Резервное копирование данных",
		Difficulty:   models.DifficultyMedium,
		TimeLimit:    20,
		PassingScore: 70,
		CreatedBy:    &createdBy,
		Questions: models.QuestionList{
			{ID: uuid.NewString(), Text: "Что такое фишинг?", Options: []string{"Вид компьютерного вируса", "Метод социальной инженерии для получения конфиденциальных данных", "Программа для шифрования данных", "Антивирусное ПО"}, CorrectAnswer: 1},
			{ID: uuid.NewString(), Text: "Какой пароль является наиболее надёжным?", Options: []string{"123456", "password", "Qw3rTy!@#2024xZ", "admin"}, CorrectAnswer: 2},
			{ID: uuid.NewString(), Text: "Что такое двухфакторная аутентификация?", Options: []string{"Два пароля", "Подтверждение входа двумя разными способами", "Два логина", "Две попытки входа"}, CorrectAnswer: 1},
			{ID: uuid.NewString(), Text: "Какой протокол обеспечивает безопасное соединение в браузере?", Options: []string{"HTTP", "FTP", "HTTPS", "SMTP"}, CorrectAnswer: 2},
			{ID: uuid.NewString(), Text: "Что такое бэкап?", Options: []string{"Вирус", "Резервное копирование данных", "Удаление данных", "Шифрование диска"}, CorrectAnswer: 1},
		},
	}
}

func seedInfraTemplate(createdBy uuid.UUID) *models.TestTemplate {
	return &models.TestTemplate{
		ID:          uuid.New(),
		Title:       "Основы IT-инфраструктуры",
		Topic:       "IT-инфраструктура",
		Description: "Тест по основам серверного оборудования, сетей и облачных технологий",
		TopicMaterial: "## Основы IT-инфраструктуры\n\n### Сетевые понятия:\n- **IP-адрес** — уникальный идентификатор устройства в сети\n- **DNS** — система доменных имён\n- **VLAN** — виртуальная локальная сеть\n\n### Порты:\n- 22 — SSH\n- 80 — HTTP\n- 443 — HTTPS",
		Difficulty:   models.DifficultyHard,
		TimeLimit:    25,
		PassingScore: 75,
		CreatedBy:    &createdBy,
		Questions: models.QuestionList{
			{ID: uuid.NewString(), Text: "Что такое VLAN?", Options: []string{"Виртуальный сервер", "Виртуальная локальная сеть", "Протокол передачи данных", "Тип кабеля"}, CorrectAnswer: 1},
			{ID: uuid.NewString(), Text: "Какой порт по умолчанию использует HTTP?", Options: []string{"21", "22", "80", "443"}, CorrectAnswer: 2},
			{ID: uuid.NewString(), Text: "Что такое DNS?", Options: []string{"Система доменных имён", "Протокол безопасности", "Файловая система", "Тип базы данных"}, CorrectAnswer: 0},
			{ID: uuid.NewString(), Text: "Какой уровень модели OSI отвечает за маршрутизацию?", Options: []string{"Канальный", "Сетевой", "Транспортный", "Прикладной"}, CorrectAnswer: 1},
			{ID: uuid.NewString(), Text: "Что такое RAID 1?", Options: []string{"Чередование дисков", "Зеркалирование дисков", "Объединение дисков", "Шифрование дисков"}, CorrectAnswer: 1},
		},
	}
}
