package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// StaffRepository defines persistence access for the staff directory.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffProfile) error
	List(ctx context.Context) ([]domain.StaffProfile, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository returns a Postgres-backed implementation.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffProfile) error {
	const query = `
        INSERT INTO staff_profiles (name, role, bio, photo_url)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		staff.Name,
		staff.Role,
		staff.Bio,
		staff.PhotoURL,
	).Scan(&staff.ID)
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffProfile, error) {
	const query = `SELECT id, name, role, bio, photo_url FROM staff_profiles`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []domain.StaffProfile
	for rows.Next() {
		var s domain.StaffProfile
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Bio, &s.PhotoURL); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}
