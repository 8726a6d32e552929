package sqlite

import (
	"context"
	"time"

	"github.com/marketloft/emporium/internal/shop/domain"
)

type purchasesRepo struct {
	db dbtx
}

const purchaseColumns = `id, user_id, total_price, created_at, updated_at`

func scanPurchase(row interface{ Scan(...any) error }) (domain.Purchase, error) {
	var p domain.Purchase
	err := row.Scan(&p.ID, &p.UserID, &p.TotalPrice, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *purchasesRepo) GetPurchaseByID(ctx context.Context, id string) (domain.Purchase, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = ?`, id)
	p, err := scanPurchase(row)
	if err != nil {
		return domain.Purchase{}, mapNotFound(err)
	}
	return p, nil
}

func (r *purchasesRepo) ListPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *purchasesRepo) CreatePurchase(ctx context.Context, p domain.Purchase) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO purchases (id, user_id, total_price, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.TotalPrice, now, now)
	return mapConstraint(err)
}

func (r *purchasesRepo) UpdatePurchase(ctx context.Context, id string, totalPrice float64) error {
	return mustAffect(r.db.ExecContext(ctx,
		`UPDATE purchases SET total_price = ?, updated_at = ? WHERE id = ?`,
		totalPrice, time.Now().UTC(), id))
}

func (r *purchasesRepo) DeletePurchase(ctx context.Context, id string) error {
	return mustAffect(r.db.ExecContext(ctx,
		`DELETE FROM purchases WHERE id = ?`, id))
}
