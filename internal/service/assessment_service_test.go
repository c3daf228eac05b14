package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"careerquest/internal/domain"
)

type mockResultRepo struct {
	records []domain.AssessmentRecord
	err     error
}

func (m *mockResultRepo) Insert(_ context.Context, record domain.AssessmentRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockResultRepo) ListRecent(_ context.Context, _ int) ([]domain.AssessmentRecord, error) {
	return m.records, nil
}

type mockEmailSender struct {
	to     string
	report domain.CareerReport
	calls  int
	err    error
}

func (m *mockEmailSender) SendCareerReport(_ context.Context, toEmail string, report domain.CareerReport) error {
	m.calls++
	m.to = toEmail
	m.report = report
	return m.err
}

func newTestAssessmentService(repo *mockResultRepo) *AssessmentService {
	return NewAssessmentService(NewMemoryFlowStore(time.Minute), repo, nil, zap.NewNop())
}

func TestStartValidation(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{})
	ctx := context.Background()

	if _, err := svc.Start(ctx, OnboardingInput{Name: "  ", Aim: "doctor"}); !errors.Is(err, ErrOnboardingInvalid) {
		t.Fatalf("expected ErrOnboardingInvalid for empty name, got %v", err)
	}
	if _, err := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: ""}); !errors.Is(err, ErrOnboardingInvalid) {
		t.Fatalf("expected ErrOnboardingInvalid for empty aim, got %v", err)
	}
}

func TestStartCreatesSessionOfTwenty(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{})
	flow, err := svc.Start(context.Background(), OnboardingInput{Name: " Asha ", Age: "16", Aim: " Pilot "})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if flow.User.Name != "Asha" || flow.User.Aim != "Pilot" {
		t.Fatalf("expected trimmed user data, got %+v", flow.User)
	}
	if flow.Session == nil || len(flow.Session.Questions) != domain.SessionLength {
		t.Fatalf("expected %d sampled questions", domain.SessionLength)
	}
	seen := make(map[int]bool)
	for _, q := range flow.Session.Questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question %d in session", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestMidFlowAccessWithoutOnboarding(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{})
	ctx := context.Background()
	if _, err := svc.CurrentQuestion(ctx, "missing"); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected ErrFlowNotFound, got %v", err)
	}
	if _, err := svc.Results(ctx, "missing"); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected ErrFlowNotFound, got %v", err)
	}
	if err := svc.SelectAnswer(ctx, "missing", 3); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected ErrFlowNotFound, got %v", err)
	}
}

func TestAdvanceRequiresSelection(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{})
	ctx := context.Background()
	flow, _ := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: "doctor"})

	if _, err := svc.Advance(ctx, flow.ID); !errors.Is(err, domain.ErrNoAnswerSelected) {
		t.Fatalf("expected ErrNoAnswerSelected, got %v", err)
	}
	if err := svc.SelectAnswer(ctx, flow.ID, 9); !errors.Is(err, domain.ErrAnswerOutOfRange) {
		t.Fatalf("expected ErrAnswerOutOfRange, got %v", err)
	}
}

func TestFullRunAllFives(t *testing.T) {
	repo := &mockResultRepo{}
	svc := newTestAssessmentService(repo)
	ctx := context.Background()
	flow, _ := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: "Software Developer"})

	for i := 0; i < domain.SessionLength; i++ {
		view, err := svc.CurrentQuestion(ctx, flow.ID)
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		if view.Index != i || view.Total != domain.SessionLength {
			t.Fatalf("unexpected progress %d/%d at step %d", view.Index, view.Total, i)
		}
		if _, err := svc.Results(ctx, flow.ID); !errors.Is(err, ErrResultsNotReady) {
			t.Fatalf("results must not be ready mid-run, got %v", err)
		}
		if err := svc.SelectAnswer(ctx, flow.ID, 5); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		completed, err := svc.Advance(ctx, flow.ID)
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if want := i == domain.SessionLength-1; completed != want {
			t.Fatalf("completed=%v at step %d", completed, i)
		}
	}

	report, err := svc.Results(ctx, flow.ID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if report.Result.OverallPercentage != 100 {
		t.Fatalf("expected overall 100, got %d", report.Result.OverallPercentage)
	}
	for trait, pct := range report.Result.TraitAverages {
		if pct != 100 {
			t.Fatalf("expected %s at 100, got %d", trait, pct)
		}
	}
	if report.Avatar.Emoji != "💻" {
		t.Fatalf("expected programmer avatar, got %q", report.Avatar.Emoji)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(repo.records))
	}
	rec := repo.records[0]
	if rec.OverallPercentage != 100 || rec.FlowID != flow.ID {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestFullRunAllOnes(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{})
	ctx := context.Background()
	flow, _ := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: "doctor"})

	for i := 0; i < domain.SessionLength; i++ {
		if err := svc.SelectAnswer(ctx, flow.ID, 1); err != nil {
			t.Fatalf("select: %v", err)
		}
		if _, err := svc.Advance(ctx, flow.ID); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	report, err := svc.Results(ctx, flow.ID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if report.Result.OverallPercentage != 20 {
		t.Fatalf("expected overall 20, got %d", report.Result.OverallPercentage)
	}
	for trait, pct := range report.Result.TraitAverages {
		if pct != 20 {
			t.Fatalf("expected %s at 20, got %d", trait, pct)
		}
	}
}

func TestRecordFailureDoesNotBlockResults(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{err: errors.New("db down")})
	ctx := context.Background()
	flow, _ := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: "doctor"})
	for i := 0; i < domain.SessionLength; i++ {
		_ = svc.SelectAnswer(ctx, flow.ID, 3)
		if _, err := svc.Advance(ctx, flow.ID); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if _, err := svc.Results(ctx, flow.ID); err != nil {
		t.Fatalf("results must survive record failure: %v", err)
	}
}

func TestClearDiscardsFlow(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{})
	ctx := context.Background()
	flow, _ := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: "doctor"})
	if err := svc.Clear(ctx, flow.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := svc.CurrentQuestion(ctx, flow.ID); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected cleared flow, got %v", err)
	}
}

func TestEmailReport(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewAssessmentService(NewMemoryFlowStore(time.Minute), &mockResultRepo{}, sender, zap.NewNop())
	ctx := context.Background()
	flow, _ := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: "pilot"})

	if err := svc.EmailReport(ctx, flow.ID, "asha@example.com"); !errors.Is(err, ErrResultsNotReady) {
		t.Fatalf("expected ErrResultsNotReady before completion, got %v", err)
	}
	for i := 0; i < domain.SessionLength; i++ {
		_ = svc.SelectAnswer(ctx, flow.ID, 4)
		_, _ = svc.Advance(ctx, flow.ID)
	}
	if err := svc.EmailReport(ctx, flow.ID, "asha@example.com"); err != nil {
		t.Fatalf("email report: %v", err)
	}
	if sender.calls != 1 || sender.to != "asha@example.com" {
		t.Fatalf("expected one send to asha@example.com, got %d to %q", sender.calls, sender.to)
	}
	if sender.report.Avatar.Emoji != "✈️" {
		t.Fatalf("expected pilot report, got %q", sender.report.Avatar.Emoji)
	}
}

func TestAvatarReveal(t *testing.T) {
	svc := newTestAssessmentService(&mockResultRepo{})
	ctx := context.Background()
	flow, _ := svc.Start(ctx, OnboardingInput{Name: "Asha", Aim: "astronaut"})
	avatar, err := svc.Avatar(ctx, flow.ID)
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if avatar.Emoji != "🚀" {
		t.Fatalf("expected astronaut avatar, got %q", avatar.Emoji)
	}
}
