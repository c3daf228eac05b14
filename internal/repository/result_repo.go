package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"careerquest/internal/domain"
)

// ResultRepository persiste los resultados de sesiones completadas.
type ResultRepository interface {
	Insert(ctx context.Context, record domain.AssessmentRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.AssessmentRecord, error)
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Insert(ctx context.Context, record domain.AssessmentRecord) error {
	const query = `
		INSERT INTO assessment_results (id, flow_id, name, aim, dominant_trait, overall_percentage, trait_averages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	averages, err := json.Marshal(record.TraitAverages)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.FlowID,
		record.Name,
		record.Aim,
		record.DominantTrait,
		record.OverallPercentage,
		averages,
		record.CreatedAt,
	)
	return err
}

func (r *PgResultRepository) ListRecent(ctx context.Context, limit int) ([]domain.AssessmentRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
		SELECT id, flow_id, name, aim, dominant_trait, overall_percentage, trait_averages, created_at
		FROM assessment_results
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AssessmentRecord
	for rows.Next() {
		var rec domain.AssessmentRecord
		var averages []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.FlowID,
			&rec.Name,
			&rec.Aim,
			&rec.DominantTrait,
			&rec.OverallPercentage,
			&averages,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(averages) > 0 {
			if err := json.Unmarshal(averages, &rec.TraitAverages); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
