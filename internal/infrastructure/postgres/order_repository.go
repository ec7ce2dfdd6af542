package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, buyer_id, buyer_name, item_count, subtotal, tax, total, status, checkout_at, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Cabecera en orders, líneas en order_items (se reescriben completas en Update).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste cabecera y líneas.
func (r *OrderRepo) Create(o *entity.Order) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		o.ID, o.BuyerID, o.BuyerName, o.ItemCount, o.Subtotal, o.Tax, o.Total,
		o.Status, o.CheckoutAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// índice parcial uq_orders_draft: un solo draft por comprador
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(ctx, o)
}

// GetByID obtiene una orden con sus líneas, o nil.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getOne(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetDraftByBuyer devuelve la única orden draft del comprador, o nil.
func (r *OrderRepo) GetDraftByBuyer(buyerID string) (*entity.Order, error) {
	return r.getOne(
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1 AND status = 'draft'`,
		buyerID,
	)
}

func (r *OrderRepo) getOne(query string, arg any) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&o.ID, &o.BuyerID, &o.BuyerName, &o.ItemCount, &o.Subtotal, &o.Tax, &o.Total,
		&o.Status, &o.CheckoutAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// Update reemplaza cabecera y líneas.
func (r *OrderRepo) Update(o *entity.Order) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		UPDATE orders SET buyer_name = $2, item_count = $3, subtotal = $4, tax = $5, total = $6,
			status = $7, checkout_at = $8, updated_at = $9
		WHERE id = $1`,
		o.ID, o.BuyerName, o.ItemCount, o.Subtotal, o.Tax, o.Total,
		o.Status, o.CheckoutAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}
	return r.insertItems(ctx, o)
}

// UpdateStatus cambia solo el estado (transición ya validada por el caso de uso).
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// DeleteDraftByBuyer elimina el draft del comprador (si existe) con sus líneas.
func (r *OrderRepo) DeleteDraftByBuyer(buyerID string) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		DELETE FROM order_items WHERE order_id IN
			(SELECT id FROM orders WHERE buyer_id = $1 AND status = 'draft')`,
		buyerID,
	)
	if err != nil {
		return fmt.Errorf("delete draft items: %w", err)
	}
	_, err = r.q.Exec(ctx, `DELETE FROM orders WHERE buyer_id = $1 AND status = 'draft'`, buyerID)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// List lista órdenes, más recientes primero.
func (r *OrderRepo) List(status string, excludeDrafts bool, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	n := 0
	next := func() string { n++; return fmt.Sprintf("$%d", n) }

	where := ""
	if status != "" {
		where = ` WHERE status = ` + next()
		args = append(args, status)
	} else if excludeDrafts {
		where = ` WHERE status <> 'draft'`
	}
	query += where + ` ORDER BY created_at DESC LIMIT ` + next()
	args = append(args, limit)
	query += ` OFFSET ` + next()
	args = append(args, offset)

	return r.list(query, args...)
}

// ListByBuyer historial del comprador (sin drafts), más recientes primero.
func (r *OrderRepo) ListByBuyer(buyerID string, limit, offset int) ([]*entity.Order, error) {
	return r.list(`
		SELECT `+orderColumns+` FROM orders
		WHERE buyer_id = $1 AND status <> 'draft'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		buyerID, limit, offset,
	)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.BuyerName, &o.ItemCount, &o.Subtotal, &o.Tax, &o.Total,
			&o.Status, &o.CheckoutAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.loadItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

func (r *OrderRepo) insertItems(ctx context.Context, o *entity.Order) error {
	for _, it := range o.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (order_id, medicine_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID, it.MedicineID, it.Name, it.Price, it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) loadItems(orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT medicine_id, name, price, quantity
		FROM order_items WHERE order_id = $1 ORDER BY name`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.MedicineID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
