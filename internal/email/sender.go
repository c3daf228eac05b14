package email

import (
	"context"
	"errors"

	"careerquest/internal/domain"
)

// Sender define la interfaz para envio del resumen de resultados por correo.
type Sender interface {
	SendCareerReport(ctx context.Context, toEmail string, report domain.CareerReport) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendCareerReport(_ context.Context, _ string, _ domain.CareerReport) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
