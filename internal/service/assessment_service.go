package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careerquest/internal/domain"
	"careerquest/internal/email"
	"careerquest/internal/repository"
)

var (
	ErrOnboardingInvalid = errors.New("onboarding data invalid")
	ErrResultsNotReady   = errors.New("results not ready")
)

// AssessmentService orquesta el flujo completo: onboarding, avatar,
// cuestionario, agregacion y reporte. El estado entre etapas vive en el
// FlowStore; el resultado final ademas se persiste como registro historico.
type AssessmentService struct {
	flows       FlowStore
	results     repository.ResultRepository
	emailSender email.Sender
	logger      *zap.Logger
}

func NewAssessmentService(
	flows FlowStore,
	results repository.ResultRepository,
	emailSender email.Sender,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		flows:       flows,
		results:     results,
		emailSender: emailSender,
		logger:      logger,
	}
}

// OnboardingInput son los datos del formulario de onboarding.
type OnboardingInput struct {
	Name string
	Age  string
	Aim  string
}

// QuestionView es la pregunta activa con su progreso.
type QuestionView struct {
	Question domain.Question `json:"question"`
	Index    int             `json:"index"`
	Total    int             `json:"total"`
	Answered int             `json:"answered"`
}

// Start crea el contexto de flujo y la sesion con 20 preguntas muestreadas.
// Devuelve el flujo completo; la primera pregunta es Session.Questions[0].
func (s *AssessmentService) Start(ctx context.Context, input OnboardingInput) (domain.FlowContext, error) {
	name := strings.TrimSpace(input.Name)
	aim := strings.TrimSpace(input.Aim)
	if name == "" || aim == "" {
		return domain.FlowContext{}, ErrOnboardingInvalid
	}

	now := time.Now().UTC()
	flow := domain.FlowContext{
		ID: uuid.NewString(),
		User: domain.FlowUserData{
			Name: name,
			Age:  strings.TrimSpace(input.Age),
			Aim:  aim,
		},
		Session: &domain.AssessmentSession{
			ID:        uuid.NewString(),
			Questions: SampleQuestions(QuestionBank(), domain.SessionLength),
			Responses: make(map[int]int, domain.SessionLength),
			CreatedAt: now,
		},
		CreatedAt: now,
	}

	if err := s.flows.Save(ctx, flow); err != nil {
		return domain.FlowContext{}, fmt.Errorf("save flow: %w", err)
	}
	s.logger.Info("assessment started",
		zap.String("flow_id", flow.ID),
		zap.String("aim", aim),
	)
	return flow, nil
}

// Avatar devuelve el avatar de la profesion elegida en el onboarding.
func (s *AssessmentService) Avatar(ctx context.Context, flowID string) (domain.Avatar, error) {
	flow, err := s.flows.Get(ctx, flowID)
	if err != nil {
		return domain.Avatar{}, err
	}
	return Classify(flow.User.Aim).Avatar, nil
}

// CurrentQuestion devuelve la pregunta activa y el progreso de la sesion.
func (s *AssessmentService) CurrentQuestion(ctx context.Context, flowID string) (QuestionView, error) {
	flow, err := s.flows.Get(ctx, flowID)
	if err != nil {
		return QuestionView{}, err
	}
	session := flow.Session
	if session == nil {
		return QuestionView{}, ErrFlowNotFound
	}
	q, ok := session.CurrentQuestion()
	if !ok {
		return QuestionView{}, domain.ErrSessionCompleted
	}
	return QuestionView{
		Question: q,
		Index:    session.Current,
		Total:    len(session.Questions),
		Answered: len(session.Responses),
	}, nil
}

// SelectAnswer registra la seleccion provisoria de la pregunta actual.
func (s *AssessmentService) SelectAnswer(ctx context.Context, flowID string, value int) error {
	flow, err := s.flows.Get(ctx, flowID)
	if err != nil {
		return err
	}
	if flow.Session == nil {
		return ErrFlowNotFound
	}
	if err := flow.Session.SelectAnswer(value); err != nil {
		return err
	}
	return s.flows.Save(ctx, flow)
}

// Advance confirma la respuesta pendiente. Al responder la ultima pregunta
// agrega los puntajes, guarda el resultado en el flujo y persiste el registro
// historico; un fallo del registro historico se loguea pero no bloquea el
// resultado (el flujo ya lo tiene).
func (s *AssessmentService) Advance(ctx context.Context, flowID string) (bool, error) {
	flow, err := s.flows.Get(ctx, flowID)
	if err != nil {
		return false, err
	}
	session := flow.Session
	if session == nil {
		return false, ErrFlowNotFound
	}
	if err := session.Advance(); err != nil {
		return false, err
	}

	completed := session.Completed()
	if completed {
		result := Aggregate(session.Questions, session.Responses)
		flow.Result = &result

		record := domain.AssessmentRecord{
			ID:                uuid.NewString(),
			FlowID:            flow.ID,
			Name:              flow.User.Name,
			Aim:               flow.User.Aim,
			DominantTrait:     result.DominantTrait,
			OverallPercentage: result.OverallPercentage,
			TraitAverages:     result.TraitAverages,
			CreatedAt:         time.Now().UTC(),
		}
		if s.results != nil {
			if err := s.results.Insert(ctx, record); err != nil {
				s.logger.Warn("persist assessment record failed",
					zap.Error(err),
					zap.String("flow_id", flow.ID),
				)
			}
		}
		s.logger.Info("assessment completed",
			zap.String("flow_id", flow.ID),
			zap.String("dominant_trait", result.DominantTrait),
			zap.Int("overall", result.OverallPercentage),
		)
	}

	if err := s.flows.Save(ctx, flow); err != nil {
		return false, fmt.Errorf("save flow: %w", err)
	}
	return completed, nil
}

// Results arma el reporte final. Falla con ErrResultsNotReady si la sesion no
// se completo, para que el handler redirija al inicio del flujo.
func (s *AssessmentService) Results(ctx context.Context, flowID string) (domain.CareerReport, error) {
	flow, err := s.flows.Get(ctx, flowID)
	if err != nil {
		return domain.CareerReport{}, err
	}
	if flow.Result == nil {
		return domain.CareerReport{}, ErrResultsNotReady
	}
	return BuildReport(flow.User, *flow.Result), nil
}

// EmailReport envia el resumen de resultados al correo indicado.
func (s *AssessmentService) EmailReport(ctx context.Context, flowID, toEmail string) error {
	if s.emailSender == nil {
		return errors.New("email sender not configured")
	}
	report, err := s.Results(ctx, flowID)
	if err != nil {
		return err
	}
	if err := s.emailSender.SendCareerReport(ctx, toEmail, report); err != nil {
		return fmt.Errorf("send career report: %w", err)
	}
	return nil
}

// Clear descarta el contexto de flujo ("take again"). Tambien se usa al
// abandonar, para que nada quede colgado para el proximo flujo.
func (s *AssessmentService) Clear(ctx context.Context, flowID string) error {
	return s.flows.Delete(ctx, flowID)
}

// RecentRecords lista los ultimos resultados persistidos, para el panel del
// counselor.
func (s *AssessmentService) RecentRecords(ctx context.Context, limit int) ([]domain.AssessmentRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.results.ListRecent(ctx, limit)
}
