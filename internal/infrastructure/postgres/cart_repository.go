package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
// Una fila por (buyer_id, medicine_id); siempre se usa dentro de la
// transacción de reserva de stock.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Get obtiene la línea del carrito, o nil si no existe.
func (r *CartRepo) Get(buyerID, medicineID string) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.q.QueryRow(context.Background(), `
		SELECT buyer_id, medicine_id, name, price, quantity, added_at, updated_at
		FROM cart_items WHERE buyer_id = $1 AND medicine_id = $2`,
		buyerID, medicineID,
	).Scan(&it.BuyerID, &it.MedicineID, &it.Name, &it.Price, &it.Quantity, &it.AddedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &it, nil
}

// Upsert inserta o actualiza la línea (clave natural buyer+medicamento).
func (r *CartRepo) Upsert(it *entity.CartItem) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO cart_items (buyer_id, medicine_id, name, price, quantity, added_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (buyer_id, medicine_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, price = EXCLUDED.price, updated_at = EXCLUDED.updated_at`,
		it.BuyerID, it.MedicineID, it.Name, it.Price, it.Quantity, it.AddedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// Delete elimina la línea del carrito.
func (r *CartRepo) Delete(buyerID, medicineID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE buyer_id = $1 AND medicine_id = $2`,
		buyerID, medicineID,
	)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// ListByBuyer lista las líneas del carrito del comprador en orden de agregado.
func (r *CartRepo) ListByBuyer(buyerID string) ([]*entity.CartItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT buyer_id, medicine_id, name, price, quantity, added_at, updated_at
		FROM cart_items WHERE buyer_id = $1 ORDER BY added_at`,
		buyerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.BuyerID, &it.MedicineID, &it.Name, &it.Price, &it.Quantity, &it.AddedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ClearByBuyer vacía el carrito del comprador.
func (r *CartRepo) ClearByBuyer(buyerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE buyer_id = $1`, buyerID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
