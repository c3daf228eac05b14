package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careerquest/internal/domain"
	"careerquest/internal/repository"
	"careerquest/internal/service"
)

type memStudentRepo struct {
	students map[string]domain.Student
	seq      map[string]int
}

func newMemStudentRepo() *memStudentRepo {
	return &memStudentRepo{
		students: make(map[string]domain.Student),
		seq:      make(map[string]int),
	}
}

func (m *memStudentRepo) assign(student domain.Student) domain.Student {
	key := student.Class + "/" + student.Section
	m.seq[key]++
	student.Seq = m.seq[key]
	student.StudentID = domain.FormatStudentID(student.Class, student.Section, student.Seq)
	m.students[student.StudentID] = student
	return student
}

func (m *memStudentRepo) Insert(_ context.Context, student domain.Student) (domain.Student, error) {
	return m.assign(student), nil
}

func (m *memStudentRepo) InsertBatch(_ context.Context, batch []domain.Student) ([]domain.Student, error) {
	out := make([]domain.Student, 0, len(batch))
	for _, s := range batch {
		out = append(out, m.assign(s))
	}
	return out, nil
}

func (m *memStudentRepo) GetByID(_ context.Context, id string) (domain.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return domain.Student{}, repository.ErrStudentNotFound
	}
	return s, nil
}

func (m *memStudentRepo) List(_ context.Context) ([]domain.Student, error) {
	out := make([]domain.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *memStudentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.students[id]; !ok {
		return repository.ErrStudentNotFound
	}
	delete(m.students, id)
	return nil
}

func (m *memStudentRepo) UpdatePhotoURL(_ context.Context, id, url string) error {
	s, ok := m.students[id]
	if !ok {
		return repository.ErrStudentNotFound
	}
	s.PhotoURL = url
	m.students[id] = s
	return nil
}

type memPhotoStore struct {
	uploads int
	deletes int
}

func (m *memPhotoStore) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	m.uploads++
	return "https://photos.example.com/" + key, nil
}

func (m *memPhotoStore) Delete(_ context.Context, _ string) error {
	m.deletes++
	return nil
}

func setupStudentRouter() (*gin.Engine, *memStudentRepo, *memPhotoStore) {
	gin.SetMode(gin.TestMode)
	repo := newMemStudentRepo()
	photos := &memPhotoStore{}
	svc := service.NewStudentService(repo, photos, zap.NewNop())
	h := NewStudentHandler(zap.NewNop(), svc)

	r := gin.New()
	students := r.Group("/students")
	students.POST("", h.Create)
	students.GET("", h.List)
	students.GET("/:id", h.Get)
	students.DELETE("/:id", h.Delete)
	students.POST("/import", h.Import)
	students.POST("/bulk", h.Bulk)
	students.POST("/:id/photo", h.UploadPhoto)
	return r, repo, photos
}

func TestStudentHandlerCreateAndGet(t *testing.T) {
	r, _, _ := setupStudentRouter()

	rec := performRequest(r, http.MethodPost, "/students", map[string]string{
		"name":  "Aarav Sharma",
		"email": "aarav@school.edu",
		"class": "10",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Student domain.Student `json:"student"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Student.StudentID != "K_10_A001" {
		t.Fatalf("unexpected student id: %s", resp.Student.StudentID)
	}

	rec = performRequest(r, http.MethodGet, "/students/K_10_A001", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	rec = performRequest(r, http.MethodGet, "/students/K_99_Z999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestStudentHandlerCreateInvalid(t *testing.T) {
	r, _, _ := setupStudentRouter()

	rec := performRequest(r, http.MethodPost, "/students", map[string]string{
		"name":  "Aarav",
		"email": "not-an-email",
		"class": "10",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestStudentHandlerImportCSV(t *testing.T) {
	r, _, _ := setupStudentRouter()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "students.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = io.Copy(fw, strings.NewReader(strings.Join([]string{
		"Full Name,Email,Class,Section",
		"Aarav Sharma,aarav@school.edu,10,B",
		"Diya Patel,bad-email,9,",
	}, "\n")))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/students/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var preview service.ImportPreview
	if err := json.Unmarshal(rec.Body.Bytes(), &preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if len(preview.Students) != 2 || preview.TotalErrors != 1 {
		t.Fatalf("unexpected preview: %+v", preview)
	}
}

func TestStudentHandlerBulk(t *testing.T) {
	r, _, _ := setupStudentRouter()

	rec := performRequest(r, http.MethodPost, "/students/bulk", map[string]any{
		"students": []map[string]string{
			{"name": "Aarav", "email": "aarav@school.edu", "class": "10", "section": "B"},
			{"name": "Diya", "email": "diya@school.edu", "class": "10", "section": "B"},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("expected 2 saved, got %d", resp.Count)
	}
}

func TestStudentHandlerPhotoAndDelete(t *testing.T) {
	r, _, photos := setupStudentRouter()

	rec := performRequest(r, http.MethodPost, "/students", map[string]string{
		"name":  "Aarav",
		"email": "aarav@school.edu",
		"class": "10",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/students/K_10_A001/photo", bytes.NewReader([]byte("jpeg-bytes")))
	req.Header.Set("Content-Type", "image/jpeg")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("photo: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if photos.uploads != 1 {
		t.Fatalf("expected 1 upload, got %d", photos.uploads)
	}

	rec = performRequest(r, http.MethodDelete, "/students/K_10_A001", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if photos.deletes != 1 {
		t.Fatalf("expected photo blob delete, got %d", photos.deletes)
	}
}
