package product

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

const selectProduct = `
SELECT p.id::text, p.name, p.slug, p.description, p.price_cents, p.image, p.stock,
       COALESCE(p.category_id::text, ''), COALESCE(c.name, ''), p.created_at, p.updated_at
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	page := max(q.Page, 1)
	if q.CategoryID != "" && !db.ValidIDs(q.CategoryID) {
		return []domain.Product{}, nil
	}

	query := selectProduct + `
WHERE ($1::text = '' OR p.category_id = NULLIF($1::text, '')::uuid)
  AND ($2::text = '' OR p.name ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%')
ORDER BY p.created_at DESC, p.name ASC
LIMIT $3 OFFSET $4
`
	rows, err := r.pool.Query(ctx, query, q.CategoryID, strings.TrimSpace(q.Search), limit, (page-1)*limit)
	if err != nil {
		r.logger.Printf("product repo: list category_id=%s search=%q error=%v", q.CategoryID, q.Search, err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list category_id=%s count=%d", q.CategoryID, len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if !db.ValidIDs(id) {
		return nil, domain.ErrNotFound
	}
	p, err := scan(r.pool.QueryRow(ctx, selectProduct+`WHERE p.id = $1::uuid`, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.Printf("product repo: get id=%s not found", id)
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if in.CategoryID != "" && !db.ValidIDs(in.CategoryID) {
		return nil, domain.ErrNotFound
	}
	const q = `
INSERT INTO products (name, slug, description, price_cents, image, stock, category_id)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7::text, '')::uuid)
RETURNING id::text
`
	var id string
	err := r.pool.QueryRow(ctx, q, in.Name, in.Slug, in.Description, domain.ToCents(in.Price), in.Image, in.Stock, in.CategoryID).Scan(&id)
	if err != nil {
		return nil, r.mapWriteErr("create", in.Slug, err)
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Update(ctx context.Context, id string, in domain.ProductUpdate) (*domain.Product, error) {
	if !db.ValidIDs(id) {
		return nil, domain.ErrNotFound
	}
	const q = `
UPDATE products SET
    name = COALESCE($2, name),
    slug = COALESCE($3, slug),
    description = COALESCE($4, description),
    price_cents = COALESCE($5, price_cents),
    image = COALESCE($6, image),
    stock = COALESCE($7, stock),
    category_id = CASE WHEN $8::text IS NULL THEN category_id ELSE NULLIF($8::text, '')::uuid END,
    updated_at = now()
WHERE id = $1::uuid
RETURNING id::text
`
	var cents *int64
	if in.Price != nil {
		v := domain.ToCents(*in.Price)
		cents = &v
	}
	var out string
	err := r.pool.QueryRow(ctx, q, id, in.Name, in.Slug, in.Description, cents, in.Image, in.Stock, in.CategoryID).Scan(&out)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, r.mapWriteErr("update", id, err)
	}
	return r.GetByID(ctx, out)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	if !db.ValidIDs(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

func (r *postgresRepo) UpsertBySlug(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if in.CategoryID != "" && !db.ValidIDs(in.CategoryID) {
		return nil, domain.ErrNotFound
	}
	const q = `
INSERT INTO products (name, slug, description, price_cents, image, stock, category_id)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7::text, '')::uuid)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image = EXCLUDED.image,
    stock = EXCLUDED.stock,
    category_id = EXCLUDED.category_id,
    updated_at = now()
RETURNING id::text
`
	var id string
	err := r.pool.QueryRow(ctx, q, in.Name, in.Slug, in.Description, domain.ToCents(in.Price), in.Image, in.Stock, in.CategoryID).Scan(&id)
	if err != nil {
		return nil, r.mapWriteErr("upsert", in.Slug, err)
	}
	r.logger.Printf("product repo: upserted slug=%s id=%s", in.Slug, id)
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) mapWriteErr(op, ref string, err error) error {
	switch {
	case db.IsUniqueViolation(err):
		return domain.ErrAlreadyExists
	case db.IsForeignKeyViolation(err):
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: %s ref=%s error=%v", op, ref, err)
	return err
}

func scan(row pgx.Row) (*domain.Product, error) {
	var (
		p            domain.Product
		cents        int64
		categoryName string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &cents, &p.Image, &p.Stock, &p.CategoryID, &categoryName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Price = domain.Cents(cents)
	if p.CategoryID != "" {
		p.Category = &domain.CategoryRef{ID: p.CategoryID, Name: categoryName}
	}
	return &p, nil
}
