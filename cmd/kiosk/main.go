package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"careerquest/internal/config"
	"careerquest/internal/db"
	"careerquest/internal/domain"
	"careerquest/internal/email"
	"careerquest/internal/repository"
	"careerquest/internal/service"
)

// Corrida completa de la evaluacion en la terminal, para probar el flujo sin
// levantar el servidor. Los resultados se persisten igual que en la API.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	resultRepo := repository.NewPgResultRepository(pool)
	assessSvc := service.NewAssessmentService(
		service.NewMemoryFlowStore(2*time.Hour),
		resultRepo,
		email.NewDisabledSender("kiosk mode"),
		logger,
	)

	fmt.Println("===== Career Quest =====")
	name := prompt(reader, "Tu nombre: ")
	age := prompt(reader, "Grupo de edad (ej. 13-15): ")
	aim := prompt(reader, "Que queres ser de grande?: ")

	flow, err := assessSvc.Start(ctx, service.OnboardingInput{Name: name, Age: age, Aim: aim})
	if err != nil {
		log.Fatalf("iniciar evaluacion: %v", err)
	}

	avatar, err := assessSvc.Avatar(ctx, flow.ID)
	if err != nil {
		log.Fatalf("avatar: %v", err)
	}
	fmt.Printf("\nTu avatar: %s  (a por ello, futuro %s!)\n\n", avatar.Emoji, aim)

	for {
		view, err := assessSvc.CurrentQuestion(ctx, flow.ID)
		if err != nil {
			log.Fatalf("pregunta: %v", err)
		}
		fmt.Printf("[%d/%d] %s\n", view.Index+1, view.Total, view.Question.Text)

		value := readLikert(reader)
		if err := assessSvc.SelectAnswer(ctx, flow.ID, value); err != nil {
			log.Fatalf("responder: %v", err)
		}
		completed, err := assessSvc.Advance(ctx, flow.ID)
		if err != nil {
			log.Fatalf("avanzar: %v", err)
		}
		if completed {
			break
		}
	}

	report, err := assessSvc.Results(ctx, flow.ID)
	if err != nil {
		log.Fatalf("resultados: %v", err)
	}
	printReport(report)

	if strings.EqualFold(prompt(reader, "Guardar reporte PDF? [s/N]: "), "s") {
		pdfBytes, err := service.RenderReportPDF(report)
		if err != nil {
			log.Fatalf("generar pdf: %v", err)
		}
		path := fmt.Sprintf("career-report-%s.pdf", flow.ID)
		if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
			log.Fatalf("guardar pdf: %v", err)
		}
		fmt.Printf("Reporte guardado en %s\n", path)
	}

	_ = assessSvc.Clear(ctx, flow.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func readLikert(reader *bufio.Reader) int {
	for {
		raw := prompt(reader, fmt.Sprintf("Respuesta (%d-%d): ", domain.LikertMin, domain.LikertMax))
		value, err := strconv.Atoi(raw)
		if err == nil && value >= domain.LikertMin && value <= domain.LikertMax {
			return value
		}
		fmt.Println("Valor invalido.")
	}
}

func printReport(report domain.CareerReport) {
	fmt.Println("\n===== Resultados =====")
	fmt.Printf("Preparacion general: %d%%\n", report.Result.OverallPercentage)
	fmt.Printf("Fortaleza dominante: %s\n\n", report.Result.DominantTrait)
	for _, trait := range report.Result.RankedTraits {
		fmt.Printf("  %-16s %3d%%\n", trait.Trait, trait.Percentage)
	}
	fmt.Printf("\n%s\n", report.Profile.Description)
	if len(report.Roadmap) > 0 {
		fmt.Printf("\nHoja de ruta para %s:\n", report.Aim)
		for i, step := range report.Roadmap {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}
	if report.Quote != "" {
		fmt.Printf("\n\"%s\"\n", report.Quote)
	}
}
