package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerquest/internal/domain"
)

var ErrStudentNotFound = errors.New("student not found")

// StudentRepository define el contrato de persistencia para estudiantes.
// Insert asigna el numero de secuencia por (clase, seccion) del lado servidor,
// dentro de la misma transaccion del alta.
type StudentRepository interface {
	Insert(ctx context.Context, student domain.Student) (domain.Student, error)
	InsertBatch(ctx context.Context, students []domain.Student) ([]domain.Student, error)
	GetByID(ctx context.Context, studentID string) (domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Delete(ctx context.Context, studentID string) error
	UpdatePhotoURL(ctx context.Context, studentID, photoURL string) error
}

type PgStudentRepository struct {
	pool *pgxpool.Pool
}

func NewPgStudentRepository(pool *pgxpool.Pool) *PgStudentRepository {
	return &PgStudentRepository{pool: pool}
}

func (r *PgStudentRepository) Insert(ctx context.Context, student domain.Student) (domain.Student, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Student{}, err
	}
	defer tx.Rollback(ctx)

	inserted, err := insertWithSequence(ctx, tx, student)
	if err != nil {
		return domain.Student{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Student{}, err
	}
	return inserted, nil
}

func (r *PgStudentRepository) InsertBatch(ctx context.Context, students []domain.Student) ([]domain.Student, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	inserted := make([]domain.Student, 0, len(students))
	for _, s := range students {
		row, err := insertWithSequence(ctx, tx, s)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, row)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return inserted, nil
}

// insertWithSequence toma el proximo numero por (clase, seccion) y da de alta
// la fila con el student_id derivado. Antes de leer el MAX se toma un advisory
// lock transaccional por (clase, seccion): en READ COMMITTED dos transacciones
// concurrentes leerian el mismo MAX y fabricarian el mismo id. El lock se
// libera solo al commit/rollback, asi InsertBatch queda cubierto tambien.
func insertWithSequence(ctx context.Context, tx pgx.Tx, student domain.Student) (domain.Student, error) {
	const lockSeq = `SELECT pg_advisory_xact_lock(hashtext($1 || '/' || $2))`
	if _, err := tx.Exec(ctx, lockSeq, student.Class, student.Section); err != nil {
		return domain.Student{}, err
	}

	const nextSeq = `
		SELECT COALESCE(MAX(seq), 0) + 1
		FROM students
		WHERE class = $1 AND section = $2
	`
	if err := tx.QueryRow(ctx, nextSeq, student.Class, student.Section).Scan(&student.Seq); err != nil {
		return domain.Student{}, err
	}
	student.StudentID = domain.FormatStudentID(student.Class, student.Section, student.Seq)

	const insert = `
		INSERT INTO students (student_id, name, email, phone, class, section, seq, age_group, photo_url, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, ''), $10)
	`
	_, err := tx.Exec(ctx, insert,
		student.StudentID,
		student.Name,
		student.Email,
		student.Phone,
		student.Class,
		student.Section,
		student.Seq,
		student.AgeGroup,
		student.PhotoURL,
		student.CreatedAt,
	)
	if err != nil {
		return domain.Student{}, err
	}
	return student, nil
}

func (r *PgStudentRepository) GetByID(ctx context.Context, studentID string) (domain.Student, error) {
	const query = `
		SELECT student_id, name, email, COALESCE(phone, ''), class, section, seq, age_group, COALESCE(photo_url, ''), created_at
		FROM students
		WHERE student_id = $1
	`
	var s domain.Student
	err := r.pool.QueryRow(ctx, query, studentID).Scan(
		&s.StudentID,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.Class,
		&s.Section,
		&s.Seq,
		&s.AgeGroup,
		&s.PhotoURL,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Student{}, ErrStudentNotFound
	}
	if err != nil {
		return domain.Student{}, err
	}
	return s, nil
}

func (r *PgStudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	const query = `
		SELECT student_id, name, email, COALESCE(phone, ''), class, section, seq, age_group, COALESCE(photo_url, ''), created_at
		FROM students
		ORDER BY class, section, seq
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(
			&s.StudentID,
			&s.Name,
			&s.Email,
			&s.Phone,
			&s.Class,
			&s.Section,
			&s.Seq,
			&s.AgeGroup,
			&s.PhotoURL,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *PgStudentRepository) Delete(ctx context.Context, studentID string) error {
	const query = `DELETE FROM students WHERE student_id = $1`
	tag, err := r.pool.Exec(ctx, query, studentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (r *PgStudentRepository) UpdatePhotoURL(ctx context.Context, studentID, photoURL string) error {
	const query = `UPDATE students SET photo_url = $2 WHERE student_id = $1`
	tag, err := r.pool.Exec(ctx, query, studentID, photoURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}
