package telegram

import (
	"fmt"
	"log"
	"sync"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SettingsFunc возвращает актуальную конфигурацию Telegram-уведомлений
type SettingsFunc func() (*models.TelegramSettings, error)

// Notifier отправляет уведомления о событиях системы в Telegram-чат.
// Конфигурация (токен, чат, включенные типы событий) читается из базы
// при каждой отправке, поэтому изменения применяются без перезапуска.
type Notifier struct {
	getSettings SettingsFunc

	mu    sync.Mutex
	api   *tgbotapi.BotAPI
	token string // токен, для которого создан api
}

// NewNotifier создает новый отправитель уведомлений
func NewNotifier(getSettings SettingsFunc) *Notifier {
	return &Notifier{getSettings: getSettings}
}

// botFor возвращает клиент Telegram API для текущего токена
func (n *Notifier) botFor(token string) (*tgbotapi.BotAPI, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.api != nil && n.token == token {
		return n.api, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = false

	n.api = api
	n.token = token
	return api, nil
}

// send отправляет сообщение, если интеграция включена и тип события разрешен.
// Ошибки доставки логируются и не прерывают вызывающую операцию.
func (n *Notifier) send(enabled func(models.NotificationToggles) bool, text string) {
	settings, err := n.getSettings()
	if err != nil {
		log.Printf("telegram: failed to load settings: %v", err)
		return
	}
	if !settings.Enabled || settings.BotToken == "" || settings.ChatID == "" {
		return
	}
	if !enabled(settings.Notifications) {
		return
	}

	api, err := n.botFor(settings.BotToken)
	if err != nil {
		log.Printf("telegram: %v", err)
		return
	}

	msg := tgbotapi.NewMessageToChannel(settings.ChatID, text)
	if _, err := api.Send(msg); err != nil {
		log.Printf("telegram: failed to send message: %v", err)
	}
}

// NotifyNewEntry сообщает о новой записи в дневнике
func (n *Notifier) NotifyNewEntry(studentName, date string, hours int) {
	n.send(func(t models.NotificationToggles) bool { return t.NewEntry },
		fmt.Sprintf("📔 %s добавил запись в дневник за %s (%d ч)", studentName, date, hours))
}

// NotifyConfirmedHours сообщает о подтверждении часов
func (n *Notifier) NotifyConfirmedHours(studentName, date string, hours int) {
	n.send(func(t models.NotificationToggles) bool { return t.ConfirmedHours },
		fmt.Sprintf("✅ Подтверждено %d ч студента %s за %s", hours, studentName, date))
}

// NotifyNewComment сообщает о комментарии руководителя
func (n *Notifier) NotifyNewComment(supervisorName, studentName string) {
	n.send(func(t models.NotificationToggles) bool { return t.NewComment },
		fmt.Sprintf("💬 %s оставил комментарий к записи студента %s", supervisorName, studentName))
}

// NotifyTestAssigned сообщает о назначении теста группе
func (n *Notifier) NotifyTestAssigned(title, group string) {
	n.send(func(t models.NotificationToggles) bool { return t.TestAssigned },
		fmt.Sprintf("📝 Группе %s назначен тест «%s»", group, title))
}

// NotifyTestCompleted сообщает о прохождении теста
func (n *Notifier) NotifyTestCompleted(studentName, title string, score, total int) {
	n.send(func(t models.NotificationToggles) bool { return t.TestCompleted },
		fmt.Sprintf("🎯 %s прошёл тест «%s» — %d/%d", studentName, title, score, total))
}

// NotifyFileUploaded сообщает о загрузке файла
func (n *Notifier) NotifyFileUploaded(studentName, fileName string) {
	n.send(func(t models.NotificationToggles) bool { return t.FileUploaded },
		fmt.Sprintf("📎 %s загрузил файл «%s»", studentName, fileName))
}

// NotifyGradeAdded сообщает о новой оценке
func (n *Notifier) NotifyGradeAdded(studentName string, score, maxScore int) {
	n.send(func(t models.NotificationToggles) bool { return t.GradeAdded },
		fmt.Sprintf("⭐ %s получил оценку %d/%d", studentName, score, maxScore))
}

// NotifyRegistrationRequest сообщает о новой заявке на регистрацию
func (n *Notifier) NotifyRegistrationRequest(name string, role models.Role) {
	n.send(func(t models.NotificationToggles) bool { return t.RegistrationRequest },
		fmt.Sprintf("🔔 Новая заявка на регистрацию: %s (%s)", name, role))
}
