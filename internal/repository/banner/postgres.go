package banner

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.Banner, error) {
	const q = `
SELECT id::text, title, image, description, is_active, sort_order
FROM banners
WHERE is_active
ORDER BY sort_order ASC, created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Banner, error) {
		var b domain.Banner
		err := row.Scan(&b.ID, &b.Title, &b.Image, &b.Description, &b.IsActive, &b.Order)
		return b, err
	})
}

// Upsert inserts or refreshes a banner keyed by its title.
func (r *postgresRepo) Upsert(ctx context.Context, b domain.Banner) (*domain.Banner, error) {
	const q = `
INSERT INTO banners (title, image, description, is_active, sort_order)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (title) DO UPDATE
SET image = EXCLUDED.image,
    description = EXCLUDED.description,
    is_active = EXCLUDED.is_active,
    sort_order = EXCLUDED.sort_order
RETURNING id::text
`
	out := b
	if err := r.pool.QueryRow(ctx, q, b.Title, b.Image, b.Description, b.IsActive, b.Order).Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}
