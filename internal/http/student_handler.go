package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careerquest/internal/repository"
	"careerquest/internal/service"
)

// maxUploadBytes limita planillas y fotos a 10 MB.
const maxUploadBytes = 10 << 20

// StudentHandler mantiene dependencias para endpoints de estudiantes.
type StudentHandler struct {
	logger      *zap.Logger
	studentServ *service.StudentService
}

func NewStudentHandler(logger *zap.Logger, studentServ *service.StudentService) *StudentHandler {
	return &StudentHandler{
		logger:      logger,
		studentServ: studentServ,
	}
}

// Create maneja POST /students.
func (h *StudentHandler) Create(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phone"`
		Class    string `json:"class" binding:"required"`
		Section  string `json:"section"`
		AgeGroup string `json:"age_group"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create student request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	student, err := h.studentServ.Create(c.Request.Context(), service.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Class:    req.Class,
		Section:  req.Section,
		AgeGroup: req.AgeGroup,
	})
	if err != nil {
		if errors.Is(err, service.ErrStudentInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("create student failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create student"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": student})
}

// List maneja GET /students.
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list students failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list students"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// Get maneja GET /students/:id.
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		h.logger.Error("get student failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get student"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// Delete maneja DELETE /students/:id.
func (h *StudentHandler) Delete(c *gin.Context) {
	err := h.studentServ.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		h.logger.Error("delete student failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete student"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Import maneja POST /students/import. Recibe la planilla como multipart y
// devuelve la vista previa con filas y errores; no persiste nada.
func (h *StudentHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("open upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	preview, err := service.ParseStudentFile(fileHeader.Filename, f)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType),
			errors.Is(err, service.ErrFileEmpty),
			errors.Is(err, service.ErrMissingColumns):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("parse student file failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not parse file"})
			return
		}
	}
	c.JSON(http.StatusOK, preview)
}

// Bulk maneja POST /students/bulk. Persiste las filas ya revisadas de una
// importacion.
func (h *StudentHandler) Bulk(c *gin.Context) {
	var req struct {
		Students []service.ImportedStudent `json:"students" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid bulk request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.studentServ.CreateBulk(c.Request.Context(), req.Students)
	if err != nil {
		if errors.Is(err, service.ErrStudentInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("bulk create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save students"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"students": saved, "count": len(saved)})
}

// UploadPhoto maneja POST /students/:id/photo. Acepta el JPEG crudo en el
// cuerpo o como multipart bajo "photo".
func (h *StudentHandler) UploadPhoto(c *gin.Context) {
	var data []byte
	if fileHeader, err := c.FormFile("photo"); err == nil {
		if fileHeader.Size > maxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			h.logger.Error("open photo failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read photo"})
			return
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read photo"})
			return
		}
	} else {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read photo"})
			return
		}
		data = body
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}

	url, err := h.studentServ.UploadPhoto(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		h.logger.Error("upload photo failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upload photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
