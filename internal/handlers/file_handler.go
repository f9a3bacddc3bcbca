package handlers

import (
	"net/http"

	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler представляет обработчик загруженных файлов
type FileHandler struct {
	fileService *services.FileService
}

// NewFileHandler создает новый обработчик файлов
func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload принимает multipart-файл и привязывает его к практике
func (h *FileHandler) Upload(c *gin.Context) {
	practiceID, err := uuid.Parse(c.PostForm("practice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid practice_id"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}

	file, err := h.fileService.Upload(currentUser(c), practiceID, header)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// List получает файлы. Студент видит свои, проверяющие — все.
func (h *FileHandler) List(c *gin.Context) {
	user := currentUser(c)

	var files []models.UploadedFile
	var err error
	if user.Role == models.RoleStudent {
		files, err = h.fileService.ListByStudent(user.ID)
	} else {
		files, err = h.fileService.List()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// FileStatusRequest представляет решение проверяющего по файлу
type FileStatusRequest struct {
	Status  models.FileStatus `json:"status" binding:"required"`
	Comment string            `json:"comment"`
}

// UpdateStatus изменяет статус файла
func (h *FileHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	var req FileStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Status {
	case models.FilePending, models.FileReviewed, models.FileApproved, models.FileRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	file, err := h.fileService.UpdateStatus(currentUser(c), id, req.Status, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// Delete удаляет нерассмотренный файл студента
func (h *FileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	if err := h.fileService.Delete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
