package review

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

const columns = `id::text, rating, comment, user_id::text, product_id::text, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, userID string, in domain.ReviewInput) (*domain.Review, error) {
	if !db.ValidIDs(userID, in.ProductID) {
		return nil, domain.ErrNotFound
	}
	var rv domain.Review
	err := r.pool.QueryRow(ctx, `
INSERT INTO reviews (product_id, user_id, rating, comment)
VALUES ($1::uuid, $2::uuid, $3, $4)
RETURNING `+columns, in.ProductID, userID, in.Rating, in.Comment).
		Scan(&rv.ID, &rv.Rating, &rv.Comment, &rv.UserID, &rv.ProductID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	if !db.ValidIDs(productID) {
		return []domain.Review{}, nil
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+columns+`
FROM reviews
WHERE product_id = $1::uuid
ORDER BY created_at DESC
`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Review, error) {
		var rv domain.Review
		err := row.Scan(&rv.ID, &rv.Rating, &rv.Comment, &rv.UserID, &rv.ProductID, &rv.CreatedAt, &rv.UpdatedAt)
		return rv, err
	})
}
