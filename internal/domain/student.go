package domain

import (
	"fmt"
	"time"
)

// Student es el registro de un alumno en la tabla de estudiantes.
type Student struct {
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Class     string    `json:"class"`
	Section   string    `json:"section"`
	AgeGroup  string    `json:"age_group"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Seq       int       `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// FormatStudentID arma el identificador legible K_<clase>_<seccion><NNN>.
// La asignacion del numero de secuencia es del lado servidor (repositorio),
// por clase y seccion.
func FormatStudentID(class, section string, seq int) string {
	return fmt.Sprintf("K_%s_%s%03d", class, section, seq)
}
