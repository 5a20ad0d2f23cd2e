package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// ProgramRepository defines persistence access for programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) error
	List(ctx context.Context) ([]domain.Program, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Program, error)
	Update(ctx context.Context, program *domain.Program) (*domain.Program, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type programRepository struct {
	pool *pgxpool.Pool
}

// NewProgramRepository returns a Postgres-backed implementation.
func NewProgramRepository(pool *pgxpool.Pool) ProgramRepository {
	return &programRepository{pool: pool}
}

const programColumns = `id, title, slug, summary, description, duration_weeks, cost, image_url, created_at`

func scanProgram(row pgx.Row) (*domain.Program, error) {
	var p domain.Program
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Summary,
		&p.Description,
		&p.DurationWeeks,
		&p.Cost,
		&p.ImageURL,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepository) Create(ctx context.Context, program *domain.Program) error {
	const query = `
        INSERT INTO programs (title, slug, summary, description, duration_weeks, cost, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		program.Title,
		program.Slug,
		program.Summary,
		program.Description,
		program.DurationWeeks,
		program.Cost,
		program.ImageURL,
	).Scan(&program.ID, &program.CreatedAt)
}

func (r *programRepository) List(ctx context.Context) ([]domain.Program, error) {
	const query = `SELECT ` + programColumns + ` FROM programs ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []domain.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, *p)
	}
	return programs, rows.Err()
}

func (r *programRepository) GetBySlug(ctx context.Context, slug string) (*domain.Program, error) {
	const query = `SELECT ` + programColumns + ` FROM programs WHERE slug=$1`
	return scanProgram(r.pool.QueryRow(ctx, query, slug))
}

func (r *programRepository) Update(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	const query = `
        UPDATE programs
        SET title=$1, slug=$2, summary=$3, description=$4, duration_weeks=$5, cost=$6, image_url=$7
        WHERE id=$8
        RETURNING ` + programColumns

	return scanProgram(r.pool.QueryRow(ctx, query,
		program.Title,
		program.Slug,
		program.Summary,
		program.Description,
		program.DurationWeeks,
		program.Cost,
		program.ImageURL,
		program.ID,
	))
}

func (r *programRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *programRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM programs`).Scan(&count)
	return count, err
}
