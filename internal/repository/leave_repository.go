package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// LeaveRepository defines persistence access for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.Leave) error
	List(ctx context.Context) ([]domain.Leave, error)
	ListByName(ctx context.Context, name string) ([]domain.Leave, error)
	SetStatus(ctx context.Context, id string, status domain.LeaveStatus) (*domain.Leave, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository returns a Postgres-backed implementation.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

const leaveColumns = `id, name, reason, from_date, to_date, status, created_at, updated_at`

func scanLeave(row pgx.Row) (*domain.Leave, error) {
	var leave domain.Leave
	if err := row.Scan(
		&leave.ID,
		&leave.Name,
		&leave.Reason,
		&leave.FromDate,
		&leave.ToDate,
		&leave.Status,
		&leave.CreatedAt,
		&leave.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	const query = `
        INSERT INTO leaves (name, reason, from_date, to_date, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		leave.Name,
		leave.Reason,
		leave.FromDate,
		leave.ToDate,
		leave.Status,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
}

func (r *leaveRepository) List(ctx context.Context) ([]domain.Leave, error) {
	const query = `SELECT ` + leaveColumns + ` FROM leaves ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *leaveRepository) ListByName(ctx context.Context, name string) ([]domain.Leave, error) {
	const query = `SELECT ` + leaveColumns + ` FROM leaves WHERE name=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *leaveRepository) SetStatus(ctx context.Context, id string, status domain.LeaveStatus) (*domain.Leave, error) {
	const query = `
        UPDATE leaves SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + leaveColumns

	return scanLeave(r.pool.QueryRow(ctx, query, status, id))
}

func collectLeaves(rows pgx.Rows) ([]domain.Leave, error) {
	var leaves []domain.Leave
	for rows.Next() {
		leave, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, *leave)
	}
	return leaves, rows.Err()
}
