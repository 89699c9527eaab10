package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

const selectItem = `
SELECT ci.id::text, ci.user_id::text, ci.product_id::text, ci.quantity, ci.created_at, ci.updated_at,
       p.name, p.price_cents, p.image
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if !db.ValidIDs(userID) {
		return []domain.CartItem{}, nil
	}
	rows, err := r.pool.Query(ctx, selectItem+`WHERE ci.user_id = $1::uuid ORDER BY ci.created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, userID, itemID string) (*domain.CartItem, error) {
	if !db.ValidIDs(userID, itemID) {
		return nil, domain.ErrNotFound
	}
	return scanItem(r.pool.QueryRow(ctx, selectItem+`WHERE ci.user_id = $1::uuid AND ci.id = $2::uuid`, userID, itemID))
}

func (r *postgresRepo) Add(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	if !db.ValidIDs(userID, productID) {
		return nil, domain.ErrNotFound
	}
	var id string
	err := r.pool.QueryRow(ctx, `
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1::uuid, $2::uuid, $3)
ON CONFLICT (user_id, product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity,
    updated_at = now()
RETURNING id::text
`, userID, productID, quantity).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.Get(ctx, userID, id)
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	if !db.ValidIDs(userID, itemID) {
		return nil, domain.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_items SET quantity = $1, updated_at = now()
WHERE user_id = $2::uuid AND id = $3::uuid
`, quantity, userID, itemID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, userID, itemID)
}

func (r *postgresRepo) Remove(ctx context.Context, userID, itemID string) error {
	if !db.ValidIDs(userID, itemID) {
		return domain.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1::uuid AND id = $2::uuid`, userID, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.CartItem, error) {
	var (
		it    domain.CartItem
		snap  domain.ProductSnapshot
		cents int64
	)
	err := row.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt, &snap.Name, &cents, &snap.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	snap.ID = it.ProductID
	snap.Price = domain.Cents(cents)
	it.Product = &snap
	return &it, nil
}
