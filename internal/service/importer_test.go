package service

import (
	"errors"
	"strings"
	"testing"
)

func csvFile(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestParseStudentFileCSV(t *testing.T) {
	data := csvFile(
		"Full Name,Email Address,Phone,Class,Section,Age",
		"Aarav Sharma,aarav@school.edu,9876543210,Class 10,B,13-15",
		"Diya Patel,diya@school.edu,,9,,",
	)
	preview, err := ParseStudentFile("students.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preview.Students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(preview.Students))
	}
	first := preview.Students[0]
	if first.Name != "Aarav Sharma" || first.Email != "aarav@school.edu" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.Class != "10" {
		t.Fatalf("expected class prefix stripped, got %q", first.Class)
	}
	if first.Section != "B" || first.AgeGroup != "13-15" {
		t.Fatalf("unexpected first row extras: %+v", first)
	}
	second := preview.Students[1]
	if second.Section != "A" {
		t.Fatalf("expected default section A, got %q", second.Section)
	}
	if second.AgeGroup != "15-18" {
		t.Fatalf("expected default age group, got %q", second.AgeGroup)
	}
	if preview.TotalErrors != 0 {
		t.Fatalf("expected no row errors, got %v", preview.RowErrors)
	}
}

func TestParseStudentFileHeaderSynonyms(t *testing.T) {
	data := csvFile(
		"Student Name,E-mail,Mobile,Grade,Division",
		"Kabir Singh,kabir@school.edu,9000000000,8,C",
	)
	preview, err := ParseStudentFile("roster.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := preview.Students[0]
	if s.Name != "Kabir Singh" || s.Email != "kabir@school.edu" || s.Phone != "9000000000" {
		t.Fatalf("synonym mapping failed: %+v", s)
	}
	if s.Class != "8" || s.Section != "C" {
		t.Fatalf("grade/division mapping failed: %+v", s)
	}
}

func TestParseStudentFileMissingColumns(t *testing.T) {
	data := csvFile(
		"Full Name,Phone",
		"Aarav,987",
	)
	_, err := ParseStudentFile("students.csv", strings.NewReader(data))
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	if !strings.Contains(err.Error(), "email") || !strings.Contains(err.Error(), "class") {
		t.Fatalf("error should name missing columns: %v", err)
	}
}

func TestParseStudentFileRowErrors(t *testing.T) {
	data := csvFile(
		"Name,Email,Class",
		",aarav@school.edu,10",    // fila 2: sin nombre
		"Diya,not-an-email,9",     // fila 3: email invalido
		"Kabir,kabir@school.edu,", // fila 4: sin clase
	)
	preview, err := ParseStudentFile("students.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preview.Students) != 3 {
		t.Fatalf("invalid rows should still appear in preview, got %d", len(preview.Students))
	}
	if preview.TotalErrors != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", preview.TotalErrors, preview.RowErrors)
	}
	want := []string{
		"Row 2: Missing name",
		"Row 3: Invalid email format",
		"Row 4: Missing class",
	}
	for i, w := range want {
		if preview.RowErrors[i] != w {
			t.Fatalf("error %d: got %q, want %q", i, preview.RowErrors[i], w)
		}
	}
}

func TestParseStudentFileErrorSummary(t *testing.T) {
	lines := []string{"Name,Email,Class"}
	for i := 0; i < 8; i++ {
		lines = append(lines, ",missing-name@school.edu,10")
	}
	preview, err := ParseStudentFile("students.csv", strings.NewReader(csvFile(lines...)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.TotalErrors != 8 {
		t.Fatalf("expected 8 total errors, got %d", preview.TotalErrors)
	}
	if len(preview.RowErrors) != maxReportedRowErrors+1 {
		t.Fatalf("expected %d reported lines, got %d", maxReportedRowErrors+1, len(preview.RowErrors))
	}
	last := preview.RowErrors[len(preview.RowErrors)-1]
	if last != "...and 3 more errors" {
		t.Fatalf("unexpected summary line: %q", last)
	}
}

func TestParseStudentFileUnsupportedType(t *testing.T) {
	for _, name := range []string{"students.pdf", "students.xls"} {
		_, err := ParseStudentFile(name, strings.NewReader("x"))
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Fatalf("%s: expected ErrUnsupportedFileType, got %v", name, err)
		}
	}
}

func TestParseStudentFileEmpty(t *testing.T) {
	_, err := ParseStudentFile("students.csv", strings.NewReader("Name,Email,Class"))
	if !errors.Is(err, ErrFileEmpty) {
		t.Fatalf("expected ErrFileEmpty for header-only file, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"aarav@school.edu", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"has space@x.com", false},
		{"no-at.com", false},
	}
	for _, c := range cases {
		if got := ValidateEmail(c.email); got != c.valid {
			t.Fatalf("ValidateEmail(%q) = %v, want %v", c.email, got, c.valid)
		}
	}
}
