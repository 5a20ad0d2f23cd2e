package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// TestimonialRepository defines persistence access for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	List(ctx context.Context) ([]domain.Testimonial, error)
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository returns a Postgres-backed implementation.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (author, quote, rating)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		testimonial.Author,
		testimonial.Quote,
		testimonial.Rating,
	).Scan(&testimonial.ID, &testimonial.CreatedAt)
}

func (r *testimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	const query = `SELECT id, author, quote, rating, created_at FROM testimonials ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Quote, &t.Rating, &t.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
