package domain

import (
	"errors"
	"time"
)

// Escala Likert de las respuestas.
const (
	LikertMin = 1
	LikertMax = 5
)

// SessionLength es la cantidad de preguntas por sesion.
const SessionLength = 20

var (
	ErrAnswerOutOfRange  = errors.New("answer out of range")
	ErrNoAnswerSelected  = errors.New("no answer selected")
	ErrSessionCompleted  = errors.New("session already completed")
	ErrSessionIncomplete = errors.New("session not completed")
)

// AssessmentSession es la maquina de estados del cuestionario: avanza de a una
// pregunta, sin retroceso. Pending guarda la seleccion provisoria de la
// pregunta actual (0 = sin seleccion) y solo se confirma en Advance.
type AssessmentSession struct {
	ID        string      `json:"id"`
	Questions []Question  `json:"questions"`
	Responses map[int]int `json:"responses"`
	Current   int         `json:"current"`
	Pending   int         `json:"pending"`
	CreatedAt time.Time   `json:"created_at"`
}

// Completed informa si ya se respondieron todas las preguntas.
func (s *AssessmentSession) Completed() bool {
	return s.Current >= len(s.Questions)
}

// CurrentQuestion devuelve la pregunta activa.
func (s *AssessmentSession) CurrentQuestion() (Question, bool) {
	if s.Completed() {
		return Question{}, false
	}
	return s.Questions[s.Current], true
}

// SelectAnswer registra una seleccion provisoria para la pregunta actual.
// Puede sobrescribirse hasta que Advance la confirme.
func (s *AssessmentSession) SelectAnswer(value int) error {
	if s.Completed() {
		return ErrSessionCompleted
	}
	if value < LikertMin || value > LikertMax {
		return ErrAnswerOutOfRange
	}
	s.Pending = value
	return nil
}

// Advance confirma la seleccion pendiente y pasa a la siguiente pregunta.
// Falla sin efectos si no hay seleccion. Una respuesta confirmada no puede
// revisarse.
func (s *AssessmentSession) Advance() error {
	if s.Completed() {
		return ErrSessionCompleted
	}
	if s.Pending == 0 {
		return ErrNoAnswerSelected
	}
	if s.Responses == nil {
		s.Responses = make(map[int]int, len(s.Questions))
	}
	s.Responses[s.Questions[s.Current].ID] = s.Pending
	s.Pending = 0
	s.Current++
	return nil
}

// TraitScore es un rasgo con su porcentaje, usado en el ranking.
type TraitScore struct {
	Trait      string `json:"trait"`
	Percentage int    `json:"percentage"`
}

// ScoredResult es el resultado derivado de una sesion completa. Inmutable
// despues de crearse.
type ScoredResult struct {
	TraitAverages     map[string]int `json:"trait_averages"`
	RankedTraits      []TraitScore   `json:"ranked_traits"`
	DominantTrait     string         `json:"dominant_trait"`
	TotalScore        int            `json:"total_score"`
	OverallPercentage int            `json:"overall_percentage"`
}

// FlowUserData son los datos del onboarding (nombre, edad, aspiracion).
type FlowUserData struct {
	Name string `json:"name"`
	Age  string `json:"age"`
	Aim  string `json:"aim"`
}

// FlowContext es el estado explicito que viaja entre las etapas del flujo
// (onboarding, avatar, cuestionario, resultados). Reemplaza el estado ambiente
// por pagina: se limpia al terminar o abandonar, nunca se filtra entre flujos.
type FlowContext struct {
	ID               string             `json:"id"`
	User             FlowUserData       `json:"user"`
	Session          *AssessmentSession `json:"session,omitempty"`
	Result           *ScoredResult      `json:"result,omitempty"`
	SelectedStudents []string           `json:"selected_students,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}
