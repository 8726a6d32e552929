package sqlite

import (
	"context"
	"time"

	"github.com/marketloft/emporium/internal/shop/domain"
)

type cartItemsRepo struct {
	db dbtx
}

const cartItemColumns = `id, user_id, product_id, quantity, created_at, updated_at`

func scanCartItem(row interface{ Scan(...any) error }) (domain.CartItem, error) {
	var item domain.CartItem
	err := row.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func (r *cartItemsRepo) GetCartItemByID(ctx context.Context, id string) (domain.CartItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+cartItemColumns+` FROM cart_items WHERE id = ?`, id)
	item, err := scanCartItem(row)
	if err != nil {
		return domain.CartItem{}, mapNotFound(err)
	}
	return item, nil
}

func (r *cartItemsRepo) ListCartItemsByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cartItemColumns+` FROM cart_items WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *cartItemsRepo) CreateCartItem(ctx context.Context, item domain.CartItem) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.ProductID, item.Quantity, now, now)
	return mapConstraint(err)
}

func (r *cartItemsRepo) UpdateCartItem(ctx context.Context, id, productID string, quantity int64) error {
	return mustAffect(r.db.ExecContext(ctx,
		`UPDATE cart_items SET product_id = ?, quantity = ?, updated_at = ? WHERE id = ?`,
		productID, quantity, time.Now().UTC(), id))
}

func (r *cartItemsRepo) DeleteCartItem(ctx context.Context, id string) error {
	return mustAffect(r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = ?`, id))
}
