package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

const paymentPending = "PENDING"

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in NewOrder) (*domain.OrderDetail, error) {
	address, err := json.Marshal(in.ShippingAddress)
	if err != nil {
		return nil, err
	}
	var coupon *string
	if in.CouponCode != "" {
		coupon = &in.CouponCode
	}

	orderID := uuid.NewString()
	err = db.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, user_id, total_cents, status, shipping_address, coupon_code)
VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
`, orderID, in.UserID, domain.ToCents(in.Total), domain.OrderStatusPending, address, coupon); err != nil {
			return err
		}

		for _, l := range in.Lines {
			cmd, err := tx.Exec(ctx, `
UPDATE products SET stock = stock - $1, updated_at = now()
WHERE id = $2::uuid AND stock >= $1
`, l.Quantity, l.ProductID)
			if err != nil {
				return err
			}
			if cmd.RowsAffected() == 0 {
				return fmt.Errorf("%s: %w", l.Name, domain.ErrInsufficientStock)
			}

			if _, err := tx.Exec(ctx, `
INSERT INTO order_items (id, order_id, product_id, product_name, product_image, price_cents, quantity)
VALUES ($1::uuid, $2::uuid, $3::uuid, $4, $5, $6, $7)
`, uuid.NewString(), orderID, l.ProductID, l.Name, l.Image, domain.ToCents(l.Price), l.Quantity); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO payments (order_id, method, amount_cents, status)
VALUES ($1::uuid, $2, $3, $4)
`, orderID, in.PaymentMethod, domain.ToCents(in.Total), paymentPending); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1::uuid`, in.UserID)
		return err
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, in.UserID, orderID)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	if !db.ValidIDs(userID) {
		return []domain.Order{}, nil
	}
	rows, err := r.pool.Query(ctx, `
SELECT id::text, user_id::text, total_cents, status, created_at
FROM orders
WHERE user_id = $1::uuid
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		var (
			o     domain.Order
			cents int64
		)
		if err := row.Scan(&o.ID, &o.UserID, &cents, &o.Status, &o.CreatedAt); err != nil {
			return domain.Order{}, err
		}
		o.Total = domain.Cents(cents)
		return o, nil
	})
}

func (r *postgresRepo) GetByID(ctx context.Context, userID, id string) (*domain.OrderDetail, error) {
	if !db.ValidIDs(userID, id) {
		return nil, domain.ErrNotFound
	}
	var (
		d       domain.OrderDetail
		cents   int64
		address []byte
	)
	err := r.pool.QueryRow(ctx, `
SELECT id::text, user_id::text, total_cents, status, shipping_address, coupon_code, created_at, updated_at
FROM orders
WHERE user_id = $1::uuid AND id = $2::uuid
`, userID, id).Scan(&d.ID, &d.UserID, &cents, &d.Status, &address, &d.CouponID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	d.Total = domain.Cents(cents)

	var addr domain.ShippingAddress
	if err := json.Unmarshal(address, &addr); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}
	d.ShippingAddress = []domain.ShippingAddress{addr}

	if d.Items, err = r.lines(ctx, d.ID); err != nil {
		return nil, err
	}
	if d.Payments, err = r.payments(ctx, d.ID); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) lines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, COALESCE(product_id::text, ''), product_name, product_image, price_cents, quantity
FROM order_items
WHERE order_id = $1::uuid
ORDER BY product_name ASC
`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OrderLine, error) {
		var (
			l     domain.OrderLine
			cents int64
		)
		if err := row.Scan(&l.ID, &l.ProductID, &l.Product.Name, &l.Product.Image, &cents, &l.Quantity); err != nil {
			return domain.OrderLine{}, err
		}
		l.Price = domain.Cents(cents)
		return l, nil
	})
}

func (r *postgresRepo) payments(ctx context.Context, orderID string) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `
SELECT method, amount_cents, status
FROM payments
WHERE order_id = $1::uuid
ORDER BY created_at ASC
`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		var (
			p     domain.Payment
			cents int64
		)
		if err := row.Scan(&p.Method, &cents, &p.Status); err != nil {
			return domain.Payment{}, err
		}
		p.Amount = domain.Cents(cents)
		return p, nil
	})
}
