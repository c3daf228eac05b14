package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"careerquest/internal/domain"
	"careerquest/internal/repository"
	"careerquest/internal/storage"
)

var ErrStudentInvalid = errors.New("invalid student data")

// StudentService cubre el alta manual, la carga masiva desde planilla y el
// ciclo de vida de la foto de perfil.
type StudentService struct {
	students repository.StudentRepository
	photos   storage.PhotoStore
	logger   *zap.Logger
}

func NewStudentService(students repository.StudentRepository, photos storage.PhotoStore, logger *zap.Logger) *StudentService {
	return &StudentService{students: students, photos: photos, logger: logger}
}

// CreateInput son los campos que llegan del formulario de alta manual. El
// identificador K_<clase>_<seccion><nro> lo asigna el servidor.
type CreateInput struct {
	Name     string
	Email    string
	Phone    string
	Class    string
	Section  string
	AgeGroup string
}

func (in *CreateInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Class = strings.TrimSpace(in.Class)
	in.Section = strings.TrimSpace(in.Section)
	in.AgeGroup = strings.TrimSpace(in.AgeGroup)

	if in.Name == "" || in.Email == "" || in.Class == "" {
		return fmt.Errorf("%w: name, email and class are required", ErrStudentInvalid)
	}
	if !ValidateEmail(in.Email) {
		return fmt.Errorf("%w: invalid email format", ErrStudentInvalid)
	}
	if in.Section == "" {
		in.Section = "A"
	}
	if in.AgeGroup == "" {
		in.AgeGroup = "15-18"
	}
	return nil
}

// Create valida el alta manual e inserta al estudiante con ID secuencial por
// clase y seccion.
func (s *StudentService) Create(ctx context.Context, in CreateInput) (domain.Student, error) {
	if err := in.normalize(); err != nil {
		return domain.Student{}, err
	}
	student := domain.Student{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Class:     in.Class,
		Section:   in.Section,
		AgeGroup:  in.AgeGroup,
		CreatedAt: time.Now().UTC(),
	}
	return s.students.Insert(ctx, student)
}

// CreateBulk inserta las filas aceptadas de una importacion. Todas las filas
// se insertan en la misma transaccion: o entran todas o ninguna.
func (s *StudentService) CreateBulk(ctx context.Context, imported []ImportedStudent) ([]domain.Student, error) {
	if len(imported) == 0 {
		return nil, fmt.Errorf("%w: no students to save", ErrStudentInvalid)
	}
	now := time.Now().UTC()
	batch := make([]domain.Student, 0, len(imported))
	for i, row := range imported {
		in := CreateInput{
			Name:     row.Name,
			Email:    row.Email,
			Phone:    row.Phone,
			Class:    row.Class,
			Section:  row.Section,
			AgeGroup: row.AgeGroup,
		}
		if err := in.normalize(); err != nil {
			return nil, fmt.Errorf("student %d: %w", i+1, err)
		}
		batch = append(batch, domain.Student{
			Name:      in.Name,
			Email:     in.Email,
			Phone:     in.Phone,
			Class:     in.Class,
			Section:   in.Section,
			AgeGroup:  in.AgeGroup,
			CreatedAt: now,
		})
	}
	return s.students.InsertBatch(ctx, batch)
}

func (s *StudentService) Get(ctx context.Context, studentID string) (domain.Student, error) {
	return s.students.GetByID(ctx, studentID)
}

func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

// Delete borra al estudiante y, si tenia foto, intenta borrar el blob. El
// borrado del blob es best-effort: si falla solo se loguea.
func (s *StudentService) Delete(ctx context.Context, studentID string) error {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.students.Delete(ctx, studentID); err != nil {
		return err
	}
	if student.PhotoURL != "" {
		key := storage.KeyFromURL(student.PhotoURL)
		if err := s.photos.Delete(ctx, key); err != nil {
			s.logger.Warn("no se pudo borrar la foto del estudiante",
				zap.String("student_id", studentID),
				zap.String("key", key),
				zap.Error(err))
		}
	}
	return nil
}

// UploadPhoto sube la captura JPEG al bucket y guarda la URL publica en el
// registro del estudiante.
func (s *StudentService) UploadPhoto(ctx context.Context, studentID string, jpeg []byte) (string, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return "", err
	}
	key := storage.PhotoKey(studentID, time.Now())
	url, err := s.photos.Upload(ctx, key, bytes.NewReader(jpeg), "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}
	if err := s.students.UpdatePhotoURL(ctx, studentID, url); err != nil {
		return "", err
	}
	return url, nil
}
