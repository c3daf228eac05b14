package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careerquest/internal/domain"
	"careerquest/internal/service"
)

// AssessmentHandler mantiene dependencias para el flujo de evaluacion.
type AssessmentHandler struct {
	logger     *zap.Logger
	assessServ *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessServ *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		logger:     logger,
		assessServ: assessServ,
	}
}

// Start maneja POST /assessments. Crea el flujo con los datos de onboarding y
// la sesion de preguntas ya sorteada.
func (h *AssessmentHandler) Start(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Age  string `json:"age"`
		Aim  string `json:"aim" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	flow, err := h.assessServ.Start(c.Request.Context(), service.OnboardingInput{
		Name: req.Name,
		Age:  req.Age,
		Aim:  req.Aim,
	})
	if err != nil {
		if errors.Is(err, service.ErrOnboardingInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("start assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start assessment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"flow_id":  flow.ID,
		"user":     flow.User,
		"total":    len(flow.Session.Questions),
		"question": flow.Session.Questions[0],
	})
}

// Avatar maneja GET /assessments/:id/avatar.
func (h *AssessmentHandler) Avatar(c *gin.Context) {
	avatar, err := h.assessServ.Avatar(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondFlowError(c, err, "could not get avatar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": avatar})
}

// Question maneja GET /assessments/:id/question.
func (h *AssessmentHandler) Question(c *gin.Context) {
	view, err := h.assessServ.CurrentQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionCompleted) {
			c.JSON(http.StatusConflict, gin.H{"error": "assessment already completed"})
			return
		}
		h.respondFlowError(c, err, "could not get question")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Answer maneja POST /assessments/:id/answer. Selecciona (o re-selecciona) la
// respuesta de la pregunta actual sin avanzar.
func (h *AssessmentHandler) Answer(c *gin.Context) {
	var req struct {
		Value int `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.assessServ.SelectAnswer(c.Request.Context(), c.Param("id"), req.Value); err != nil {
		switch {
		case errors.Is(err, domain.ErrAnswerOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("value must be between %d and %d", domain.LikertMin, domain.LikertMax)})
			return
		case errors.Is(err, domain.ErrSessionCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "assessment already completed"})
			return
		default:
			h.respondFlowError(c, err, "could not select answer")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "selected"})
}

// Advance maneja POST /assessments/:id/advance. Confirma la respuesta
// seleccionada y pasa a la siguiente pregunta; en la ultima dispara el
// calculo de resultados.
func (h *AssessmentHandler) Advance(c *gin.Context) {
	completed, err := h.assessServ.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoAnswerSelected):
			c.JSON(http.StatusConflict, gin.H{"error": "select an answer first"})
			return
		case errors.Is(err, domain.ErrSessionCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "assessment already completed"})
			return
		default:
			h.respondFlowError(c, err, "could not advance")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

// Results maneja GET /assessments/:id/results.
func (h *AssessmentHandler) Results(c *gin.Context) {
	report, err := h.assessServ.Results(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrResultsNotReady) {
			c.JSON(http.StatusConflict, gin.H{"error": "assessment not completed yet"})
			return
		}
		h.respondFlowError(c, err, "could not get results")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ReportPDF maneja GET /assessments/:id/report.pdf.
func (h *AssessmentHandler) ReportPDF(c *gin.Context) {
	report, err := h.assessServ.Results(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrResultsNotReady) {
			c.JSON(http.StatusConflict, gin.H{"error": "assessment not completed yet"})
			return
		}
		h.respondFlowError(c, err, "could not get results")
		return
	}

	pdfBytes, err := service.RenderReportPDF(report)
	if err != nil {
		h.logger.Error("render report pdf failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render report"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-career-report.pdf", c.Param("id")))
	// Pisa el Content-Type JSON que setea el middleware global.
	c.Header("Content-Type", "application/pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// EmailReport maneja POST /assessments/:id/email.
func (h *AssessmentHandler) EmailReport(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid email report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.assessServ.EmailReport(c.Request.Context(), c.Param("id"), req.Email); err != nil {
		if errors.Is(err, service.ErrResultsNotReady) {
			c.JSON(http.StatusConflict, gin.H{"error": "assessment not completed yet"})
			return
		}
		h.respondFlowError(c, err, "could not send report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// Clear maneja DELETE /assessments/:id. Descarta el flujo en curso.
func (h *AssessmentHandler) Clear(c *gin.Context) {
	if err := h.assessServ.Clear(c.Request.Context(), c.Param("id")); err != nil {
		h.respondFlowError(c, err, "could not clear assessment")
		return
	}
	c.Status(http.StatusNoContent)
}

// Capture maneja POST /capture. Extrae nombre y profesion de una frase
// dictada, para precargar el onboarding.
func (h *AssessmentHandler) Capture(c *gin.Context) {
	var req struct {
		Utterance string `json:"utterance" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid capture request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	identity, err := service.ParseUtterance(req.Utterance)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not understand, please try again"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

// Recent maneja GET /assessments/recent. Lista los ultimos resultados
// persistidos para el panel del counselor.
func (h *AssessmentHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := h.assessServ.RecentRecords(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("list recent results failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": records})
}

func (h *AssessmentHandler) respondFlowError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, service.ErrFlowNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		return
	}
	h.logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
