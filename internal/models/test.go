package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Difficulty определяет сложность теста
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultPassingScore проходной балл по умолчанию, процентов
const DefaultPassingScore = 70

// NoAnswer значение-заглушка для вопроса без ответа, никогда не совпадает
// с индексом правильного варианта
const NoAnswer = -1

// TestQuestion представляет вопрос теста с четырьмя вариантами ответа
type TestQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuestionList хранится в базе как JSON-колонка
type QuestionList []TestQuestion

// Value сериализует список вопросов в JSON
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	data, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan десериализует список вопросов из JSON
func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	}
	return fmt.Errorf("unsupported type for QuestionList: %T", value)
}

// IntList хранится в базе как JSON-массив чисел
type IntList []int

// Value сериализует список в JSON
func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan десериализует список из JSON
func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type for IntList: %T", value)
}

// TestTemplate представляет шаблон теста, создаваемый преподавателем
type TestTemplate struct {
	ID            uuid.UUID    `json:"id" gorm:"type:text;primary_key"`
	Title         string       `json:"title" gorm:"not null"`
	Topic         string       `json:"topic"`
	Description   string       `json:"description"`
	TopicMaterial string       `json:"topic_material"` // учебный материал в markdown
	Difficulty    Difficulty   `json:"difficulty" gorm:"type:varchar(10)"`
	Questions     QuestionList `json:"questions" gorm:"type:text"`
	TimeLimit     int          `json:"time_limit,omitempty"` // минут, 0 — без ограничения
	PassingScore  int          `json:"passing_score,omitempty"`
	CreatedBy     *uuid.UUID   `json:"created_by,omitempty" gorm:"type:text"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// AssignedTest представляет тест, назначенный группе. Содержимое копируется
// из шаблона: удаление шаблона не затрагивает уже назначенные тесты.
type AssignedTest struct {
	ID            uuid.UUID    `json:"id" gorm:"type:text;primary_key"`
	TemplateID    uuid.UUID    `json:"template_id" gorm:"type:text"`
	Title         string       `json:"title" gorm:"not null"`
	Topic         string       `json:"topic"`
	TopicMaterial string       `json:"topic_material,omitempty"`
	Difficulty    Difficulty   `json:"difficulty" gorm:"type:varchar(10)"`
	Questions     QuestionList `json:"questions" gorm:"type:text"`
	AssignedTo    string       `json:"assigned_to" gorm:"not null"` // группа студентов
	AssignedBy    uuid.UUID    `json:"assigned_by" gorm:"type:text"`
	AssignedDate  string       `json:"assigned_date"`
	Deadline      string       `json:"deadline"`
	TimeLimit     int          `json:"time_limit,omitempty"`
	PassingScore  int          `json:"passing_score,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// TestResult представляет завершенную попытку прохождения теста.
// Создается ровно один раз и больше не изменяется.
type TestResult struct {
	ID             uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	TestID         uuid.UUID `json:"test_id" gorm:"type:text;not null;index"`
	StudentID      uuid.UUID `json:"student_id" gorm:"type:text;not null;index"`
	StudentName    string    `json:"student_name"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedDate  string    `json:"completed_date"`
	Answers        IntList   `json:"answers" gorm:"type:text"`
	TimeSpent      int       `json:"time_spent,omitempty"` // минут
	CreatedAt      time.Time `json:"created_at"`
}

// Percent возвращает результат в процентах
func (r *TestResult) Percent() int {
	if r.TotalQuestions == 0 {
		return 0
	}
	return r.Score * 100 / r.TotalQuestions
}

// Grade представляет оценку, выставленную вручную
type Grade struct {
	ID          uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	StudentID   uuid.UUID `json:"student_id" gorm:"type:text;not null;index"`
	Category    string    `json:"category" gorm:"not null"`
	Subcategory string    `json:"subcategory"`
	Score       int       `json:"score"` // 0-100
	MaxScore    int       `json:"max_score" gorm:"default:100"`
	Date        string    `json:"date"`
	Comment     string    `json:"comment,omitempty"`
	GivenBy     uuid.UUID `json:"given_by" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
