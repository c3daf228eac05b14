package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"careerquest/internal/domain"
)

// RenderReportPDF arma el reporte descargable en A4: encabezado con nombre y
// aspiracion, porcentaje global, barras por rasgo, perfil del rasgo dominante,
// hoja de ruta y frase motivacional.
func RenderReportPDF(report domain.CareerReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Career Assessment Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 12, "Career Assessment Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Name: %s", report.Name), "", 1, "L", false, 0, "")
	if report.Age != "" {
		pdf.CellFormat(0, 8, fmt.Sprintf("Age group: %s", report.Age), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Dream career: %s", report.Aim), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Overall readiness: %d%%", report.Result.OverallPercentage), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Strength profile", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	const barMaxWidth = 110.0
	for _, trait := range report.Result.RankedTraits {
		pdf.CellFormat(48, 7, trait.Trait, "", 0, "L", false, 0, "")
		// Fondo gris de la barra y relleno proporcional al puntaje.
		x, y := pdf.GetXY()
		pdf.SetFillColor(233, 236, 239)
		pdf.Rect(x, y+1.5, barMaxWidth, 4, "F")
		pdf.SetFillColor(79, 70, 229)
		pdf.Rect(x, y+1.5, barMaxWidth*float64(trait.Percentage)/100.0, 4, "F")
		pdf.SetXY(x+barMaxWidth+4, y)
		pdf.CellFormat(0, 7, fmt.Sprintf("%d%%", trait.Percentage), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, fmt.Sprintf("Dominant strength: %s", report.Result.DominantTrait), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, report.Profile.Description, "", "L", false)
	if len(report.Profile.Strengths) > 0 {
		pdf.Ln(1)
		pdf.MultiCell(0, 6, fmt.Sprintf("Strengths: %s", strings.Join(report.Profile.Strengths, ", ")), "", "L", false)
	}
	if len(report.Profile.Careers) > 0 {
		pdf.MultiCell(0, 6, fmt.Sprintf("Careers that fit: %s", strings.Join(report.Profile.Careers, ", ")), "", "L", false)
	}
	pdf.Ln(4)

	if len(report.Roadmap) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, fmt.Sprintf("Roadmap to become a %s", report.Aim), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for i, step := range report.Roadmap {
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, step), "", "L", false)
		}
		pdf.Ln(4)
	}

	if report.Quote != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 6, fmt.Sprintf("\"%s\"", report.Quote), "", "C", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
