package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileEmpty           = errors.New("file is empty or has no valid data")
	ErrMissingColumns      = errors.New("missing required columns")
)

// emailPattern es la validacion minima de formato, igual para alta manual e
// importacion.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxReportedRowErrors = 5

// ImportedStudent es una fila normalizada del archivo, lista para revision.
type ImportedStudent struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Class    string `json:"class"`
	Section  string `json:"section"`
	AgeGroup string `json:"age_group"`
}

// ImportPreview es el resultado del parseo: todas las filas (validas o no)
// para la grilla de revision, mas los errores por fila. RowErrors muestra
// hasta 5 y una linea de resumen con el resto; TotalErrors es el total real.
type ImportPreview struct {
	Students    []ImportedStudent `json:"students"`
	RowErrors   []string          `json:"row_errors,omitempty"`
	TotalErrors int               `json:"total_errors"`
}

// columnSynonyms mapea encabezados tipicos de planillas escolares a los
// campos canonicos. La comparacion es sobre el encabezado en minusculas y sin
// caracteres no alfanumericos.
var columnSynonyms = map[string]string{
	"fullname":     "name",
	"studentname":  "name",
	"name":         "name",
	"email":        "email",
	"emailaddress": "email",
	"phone":        "phone",
	"phonenumber":  "phone",
	"mobile":       "phone",
	"class":        "class",
	"classname":    "class",
	"grade":        "class",
	"section":      "section",
	"div":          "section",
	"division":     "section",
	"agegroup":     "agegroup",
	"age":          "agegroup",
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

func normalizeColumnName(header string) string {
	lower := nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(header)), "")
	if canonical, ok := columnSynonyms[lower]; ok {
		return canonical
	}
	return lower
}

var classPrefix = regexp.MustCompile(`(?i)^class\s*`)

// ParseStudentFile parsea una planilla xlsx o csv y devuelve la vista
// previa para revision. Falla el archivo completo solo por tipo no soportado,
// archivo vacio o columnas requeridas ausentes; los problemas por fila se
// reportan fila a fila sin descartar el resto.
func ParseStudentFile(filename string, r io.Reader) (ImportPreview, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	// Solo OOXML: excelize no lee el formato OLE legado (.xls), asi que esa
	// extension se rechaza en vez de fallar con un error confuso al abrir.
	case ".xlsx":
		rows, err = readExcelRows(r)
	case ".csv":
		rows, err = readCSVRows(r)
	default:
		return ImportPreview{}, ErrUnsupportedFileType
	}
	if err != nil {
		return ImportPreview{}, err
	}
	if len(rows) < 2 {
		return ImportPreview{}, ErrFileEmpty
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = normalizeColumnName(h)
	}

	present := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := present[h]; !ok && h != "" {
			present[h] = i
		}
	}
	var missing []string
	for _, required := range []string{"name", "email", "class"} {
		if _, ok := present[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return ImportPreview{}, fmt.Errorf("%w: %s. Required: Full Name, Email, Class",
			ErrMissingColumns, strings.Join(missing, ", "))
	}

	cell := func(row []string, field string) string {
		idx, ok := present[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var allErrors []string
	students := make([]ImportedStudent, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// La fila 1 es el encabezado; las filas de datos se numeran desde 2.
		rowNum := i + 2
		student := ImportedStudent{
			Name:     cell(row, "name"),
			Email:    cell(row, "email"),
			Phone:    cell(row, "phone"),
			Class:    classPrefix.ReplaceAllString(cell(row, "class"), ""),
			Section:  cell(row, "section"),
			AgeGroup: cell(row, "agegroup"),
		}
		if student.Section == "" {
			student.Section = "A"
		}
		if student.AgeGroup == "" {
			student.AgeGroup = "15-18"
		}

		if student.Name == "" {
			allErrors = append(allErrors, fmt.Sprintf("Row %d: Missing name", rowNum))
		}
		if student.Email == "" {
			allErrors = append(allErrors, fmt.Sprintf("Row %d: Missing email", rowNum))
		} else if !emailPattern.MatchString(student.Email) {
			allErrors = append(allErrors, fmt.Sprintf("Row %d: Invalid email format", rowNum))
		}
		if student.Class == "" {
			allErrors = append(allErrors, fmt.Sprintf("Row %d: Missing class", rowNum))
		}

		students = append(students, student)
	}

	preview := ImportPreview{
		Students:    students,
		TotalErrors: len(allErrors),
	}
	if len(allErrors) > maxReportedRowErrors {
		preview.RowErrors = append(allErrors[:maxReportedRowErrors],
			fmt.Sprintf("...and %d more errors", len(allErrors)-maxReportedRowErrors))
	} else {
		preview.RowErrors = allErrors
	}
	return preview, nil
}

// ValidateEmail aplica la misma regla de formato que la importacion.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func readExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrFileEmpty
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
