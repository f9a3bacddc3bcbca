package handlers

import (
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GradeHandler представляет обработчик оценок
type GradeHandler struct {
	gradeService *services.GradeService
}

// NewGradeHandler создает новый обработчик оценок
func NewGradeHandler(gradeService *services.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// AddGradeRequest представляет новую оценку
type AddGradeRequest struct {
	StudentID   uuid.UUID `json:"student_id" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Subcategory string    `json:"subcategory"`
	Score       int       `json:"score" binding:"min=0,max=100"`
	Comment     string    `json:"comment"`
}

// Add выставляет оценку студенту
func (h *GradeHandler) Add(c *gin.Context) {
	var req AddGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grade, err := h.gradeService.Add(currentUser(c), services.AddGradeInput{
		StudentID:   req.StudentID,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Score:       req.Score,
		Comment:     req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, grade)
}

// Update обновляет оценку
func (h *GradeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grade id"})
		return
	}

	var update services.GradeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grade, err := h.gradeService.Update(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, grade)
}

// Delete удаляет оценку
func (h *GradeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grade id"})
		return
	}

	if err := h.gradeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "grade deleted"})
}

// List получает оценки. Студент видит свои, остальные — все или по студенту.
func (h *GradeHandler) List(c *gin.Context) {
	user := currentUser(c)

	var grades []models.Grade
	var err error
	switch {
	case user.Role == models.RoleStudent:
		grades, err = h.gradeService.ListByStudent(user.ID)
	case c.Query("student_id") != "":
		var studentID uuid.UUID
		studentID, err = uuid.Parse(c.Query("student_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student_id"})
			return
		}
		grades, err = h.gradeService.ListByStudent(studentID)
	default:
		grades, err = h.gradeService.List()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"grades": grades})
}
