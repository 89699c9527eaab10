package watchlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

const selectItem = `
SELECT w.id::text, w.user_id::text, w.product_id::text, w.created_at, w.updated_at,
       p.name, p.price_cents, p.image
FROM watchlist_items w
JOIN products p ON p.id = w.product_id
`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.WatchlistItem, error) {
	if !db.ValidIDs(userID) {
		return []domain.WatchlistItem{}, nil
	}
	rows, err := r.pool.Query(ctx, selectItem+`WHERE w.user_id = $1::uuid ORDER BY w.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WatchlistItem, error) {
		it, err := scanItem(row)
		if err != nil {
			return domain.WatchlistItem{}, err
		}
		return *it, nil
	})
}

func (r *postgresRepo) Add(ctx context.Context, userID, productID string) (*domain.WatchlistItem, error) {
	if !db.ValidIDs(userID, productID) {
		return nil, domain.ErrNotFound
	}
	const q = `
INSERT INTO watchlist_items (user_id, product_id)
VALUES ($1::uuid, $2::uuid)
ON CONFLICT (user_id, product_id) DO UPDATE SET updated_at = now()
RETURNING id::text
`
	var id string
	if err := r.pool.QueryRow(ctx, q, userID, productID).Scan(&id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return scanItem(r.pool.QueryRow(ctx, selectItem+`WHERE w.id = $1::uuid`, id))
}

func (r *postgresRepo) Remove(ctx context.Context, userID, itemID string) error {
	if !db.ValidIDs(userID, itemID) {
		return domain.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM watchlist_items WHERE user_id = $1::uuid AND id = $2::uuid`, userID, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.WatchlistItem, error) {
	var (
		it    domain.WatchlistItem
		snap  domain.ProductSnapshot
		cents int64
	)
	if err := row.Scan(&it.ID, &it.UserID, &it.ProductID, &it.CreatedAt, &it.UpdatedAt, &snap.Name, &cents, &snap.Image); err != nil {
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
