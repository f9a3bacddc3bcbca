package handlers

import (
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestHandler представляет обработчик тестирования
type TestHandler struct {
	testService *services.TestService
}

// NewTestHandler создает новый обработчик тестирования
func NewTestHandler(testService *services.TestService) *TestHandler {
	return &TestHandler{testService: testService}
}

// TemplateRequest представляет новый шаблон теста
type TemplateRequest struct {
	Title         string              `json:"title" binding:"required"`
	Topic         string              `json:"topic"`
	Description   string              `json:"description"`
	TopicMaterial string              `json:"topic_material"`
	Difficulty    models.Difficulty   `json:"difficulty"`
	Questions     models.QuestionList `json:"questions" binding:"required"`
	TimeLimit     int                 `json:"time_limit"`
	PassingScore  int                 `json:"passing_score"`
}

// CreateTemplate создает шаблон теста
func (h *TestHandler) CreateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template := &models.TestTemplate{
		Title:         req.Title,
		Topic:         req.Topic,
		Description:   req.Description,
		TopicMaterial: req.TopicMaterial,
		Difficulty:    req.Difficulty,
		Questions:     req.Questions,
		TimeLimit:     req.TimeLimit,
		PassingScore:  req.PassingScore,
	}
	if err := h.testService.CreateTemplate(currentUser(c), template); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

// ListTemplates получает все шаблоны
func (h *TestHandler) ListTemplates(c *gin.Context) {
	templates, err := h.testService.ListTemplates()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// UpdateTemplate обновляет шаблон
func (h *TestHandler) UpdateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	var update services.TemplateUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.testService.UpdateTemplate(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// DuplicateTemplate создает копию шаблона
func (h *TestHandler) DuplicateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	copied, err := h.testService.DuplicateTemplate(currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, copied)
}

// DeleteTemplate удаляет шаблон
func (h *TestHandler) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	if err := h.testService.DeleteTemplate(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}

// AssignRequest представляет назначение теста группе
type AssignRequest struct {
	TemplateID uuid.UUID `json:"template_id" binding:"required"`
	Group      string    `json:"group" binding:"required"`
	Deadline   string    `json:"deadline"`
	Title      string    `json:"title"`
}

// Assign назначает тест группе
func (h *TestHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.testService.Assign(currentUser(c), services.AssignInput{
		TemplateID: req.TemplateID,
		Group:      req.Group,
		Deadline:   req.Deadline,
		Title:      req.Title,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, test)
}

// ListMine получает тесты группы студента, разделенные на пройденные
// и ожидающие
func (h *TestHandler) ListMine(c *gin.Context) {
	tests, err := h.testService.ListForStudent(currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// ListAssigned получает назначенные тесты. С ?mine=true преподаватель
// видит только назначенные им.
func (h *TestHandler) ListAssigned(c *gin.Context) {
	var tests []models.AssignedTest
	var err error
	if c.Query("mine") == "true" {
		tests, err = h.testService.ListAssignedByTeacher(currentUser(c).ID)
	} else {
		tests, err = h.testService.ListAssigned()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

// GetAssigned получает назначенный тест по ID
func (h *TestHandler) GetAssigned(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test id"})
		return
	}

	test, err := h.testService.GetAssigned(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

// SubmitRequest представляет ответы студента на тест
type SubmitRequest struct {
	Answers  map[string]int `json:"answers" binding:"required"`
	TimeLeft int            `json:"time_left"`
}

// Submit оценивает ответы и записывает результат
func (h *TestHandler) Submit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test id"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.testService.Submit(currentUser(c), services.SubmitTestInput{
		TestID:   id,
		Answers:  req.Answers,
		TimeLeft: req.TimeLeft,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListResults получает результаты теста (статистика преподавателя)
func (h *TestHandler) ListResults(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test id"})
		return
	}

	results, err := h.testService.ListResultsByTest(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ListMyResults получает результаты текущего студента
func (h *TestHandler) ListMyResults(c *gin.Context) {
	results, err := h.testService.ListResultsByStudent(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
