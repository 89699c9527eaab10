package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

const columns = `id::text, name, slug, image, description, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if !db.ValidIDs(id) {
		return nil, domain.ErrNotFound
	}
	return scan(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM categories WHERE id = $1::uuid`, id))
}

func (r *postgresRepo) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	q := `
INSERT INTO categories (name, slug, image, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns
	return scan(r.pool.QueryRow(ctx, q, in.Name, in.Slug, in.Image, in.Description))
}

func (r *postgresRepo) Update(ctx context.Context, id string, in domain.CategoryUpdate) (*domain.Category, error) {
	if !db.ValidIDs(id) {
		return nil, domain.ErrNotFound
	}
	q := `
UPDATE categories SET
    name = COALESCE($2, name),
    slug = COALESCE($3, slug),
    image = COALESCE($4, image),
    description = COALESCE($5, description),
    updated_at = now()
WHERE id = $1::uuid
RETURNING ` + columns
	return scan(r.pool.QueryRow(ctx, q, id, in.Name, in.Slug, in.Image, in.Description))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	if !db.ValidIDs(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) UpsertBySlug(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	q := `
INSERT INTO categories (name, slug, image, description)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    image = EXCLUDED.image,
    description = EXCLUDED.description,
    updated_at = now()
RETURNING ` + columns
	return scan(r.pool.QueryRow(ctx, q, in.Name, in.Slug, in.Image, in.Description))
}

func scan(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Image, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}
