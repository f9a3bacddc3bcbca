package handlers

import (
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DiaryHandler представляет обработчик дневника практики
type DiaryHandler struct {
	diaryService *services.DiaryService
}

// NewDiaryHandler создает новый обработчик дневника
func NewDiaryHandler(diaryService *services.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// AddEntryRequest представляет новую запись дневника
type AddEntryRequest struct {
	PracticeID  uuid.UUID `json:"practice_id" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Hours       int       `json:"hours" binding:"required,min=1,max=12"`
}

// AddEntry создает запись дневника
func (h *DiaryHandler) AddEntry(c *gin.Context) {
	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.diaryService.AddEntry(currentUser(c), services.AddEntryInput{
		PracticeID:  req.PracticeID,
		Date:        req.Date,
		Description: req.Description,
		Hours:       req.Hours,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry обновляет собственную запись студента
func (h *DiaryHandler) UpdateEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var update services.EntryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.diaryService.UpdateEntry(currentUser(c), id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry удаляет неподтвержденную запись студента
func (h *DiaryHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.diaryService.DeleteEntry(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// ListEntries получает записи дневника. Студент видит свои, остальные
// видят все или записи одной практики через ?practice_id=.
func (h *DiaryHandler) ListEntries(c *gin.Context) {
	user := currentUser(c)

	var entries []models.DiaryEntry
	var err error
	switch {
	case user.Role == models.RoleStudent:
		entries, err = h.diaryService.ListByStudent(user.ID)
	case c.Query("practice_id") != "":
		practiceID, parseErr := uuid.Parse(c.Query("practice_id"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid practice id"})
			return
		}
		entries, err = h.diaryService.ListByPractice(practiceID)
	default:
		entries, err = h.diaryService.List()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// Confirm подтверждает часы записи
func (h *DiaryHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	entry, err := h.diaryService.ConfirmHours(currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ConfirmAllRequest представляет пакетное подтверждение часов
type ConfirmAllRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}

// ConfirmAll подтверждает часы нескольких записей
func (h *DiaryHandler) ConfirmAll(c *gin.Context) {
	var req ConfirmAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmed, err := h.diaryService.ConfirmAll(currentUser(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"confirmed": confirmed})
}

// CommentRequest представляет комментарий руководителя
type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// Comment добавляет комментарий руководителя к записи
func (h *DiaryHandler) Comment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.diaryService.AddComment(currentUser(c), id, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// RatingRequest представляет оценку записи
type RatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// Rate ставит записи оценку от 1 до 5
func (h *DiaryHandler) Rate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.diaryService.AddRating(currentUser(c), id, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListPractices получает справочник практик. Студент видит практики
// своей группы.
func (h *DiaryHandler) ListPractices(c *gin.Context) {
	user := currentUser(c)

	var practices []models.Practice
	var err error
	if user.Role == models.RoleStudent {
		practices, err = h.diaryService.ListPracticesByGroup(user.Group)
	} else {
		practices, err = h.diaryService.ListPractices()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"practices": practices})
}
