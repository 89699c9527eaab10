package user

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

const userColumns = `id::text, email, password_hash, name, phone, address, city, state, zip_code, avatar, role, created_at, updated_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	role := a.Profile.Role
	if role == "" {
		role = "USER"
	}
	q := `
INSERT INTO users (email, password_hash, name, phone, address, city, state, zip_code, avatar, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + userColumns
	p := a.Profile
	return r.scan(r.pool.QueryRow(ctx, q,
		strings.ToLower(p.Email), a.PasswordHash, p.Name, p.Phone, p.Address, p.City, p.State, p.ZipCode, p.Avatar, role,
	))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) LIMIT 1`
	return r.scan(r.pool.QueryRow(ctx, q, strings.TrimSpace(email)))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if !db.ValidIDs(id) {
		return nil, domain.ErrNotFound
	}
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1::uuid LIMIT 1`
	return r.scan(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdate) (*domain.UserProfile, error) {
	if !db.ValidIDs(id) {
		return nil, domain.ErrNotFound
	}
	q := `
UPDATE users SET
    name     = COALESCE($2, name),
    email    = COALESCE(lower($3), email),
    phone    = COALESCE($4, phone),
    address  = COALESCE($5, address),
    city     = COALESCE($6, city),
    state    = COALESCE($7, state),
    zip_code = COALESCE($8, zip_code),
    avatar   = COALESCE($9, avatar),
    updated_at = now()
WHERE id = $1::uuid
RETURNING ` + userColumns
	acct, err := r.scan(r.pool.QueryRow(ctx, q, id, in.Name, in.Email, in.Phone, in.Address, in.City, in.State, in.ZipCode, in.Avatar))
	if err != nil {
		return nil, err
	}
	return &acct.Profile, nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	p := &a.Profile
	err := row.Scan(&p.ID, &p.Email, &a.PasswordHash, &p.Name, &p.Phone, &p.Address, &p.City, &p.State, &p.ZipCode, &p.Avatar, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: scan error=%v", err)
		return nil, err
	}
	return &a, nil
}
