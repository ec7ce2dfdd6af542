package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard.
// Los drafts se excluyen de todo agregado de ventas: son carritos en curso.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountOrdersByStatus devuelve la cantidad de órdenes por estado (drafts incluidos).
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, count(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

// GetRevenue suma los totales de órdenes con checkout en el período,
// excluyendo canceladas y drafts.
func (r *AnalyticsRepo) GetRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(sum(total), 0) FROM orders
		WHERE status NOT IN ('draft', 'cancelled')
		  AND checkout_at >= $1 AND checkout_at <= $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get revenue: %w", err)
	}
	return total, nil
}

// GetTopMedicines top N medicamentos por unidades vendidas en el período.
func (r *AnalyticsRepo) GetTopMedicines(ctx context.Context, from, to time.Time, top int) ([]repository.TopMedicineResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT oi.medicine_id, oi.name,
		       sum(oi.quantity)::int AS units,
		       COALESCE(sum(oi.price * oi.quantity), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status NOT IN ('draft', 'cancelled')
		  AND o.checkout_at >= $1 AND o.checkout_at <= $2
		GROUP BY oi.medicine_id, oi.name
		ORDER BY units DESC
		LIMIT $3`,
		from, to, top,
	)
	if err != nil {
		return nil, fmt.Errorf("get top medicines: %w", err)
	}
	defer rows.Close()
	var out []repository.TopMedicineResult
	for rows.Next() {
		var t repository.TopMedicineResult
		if err := rows.Scan(&t.MedicineID, &t.Name, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top medicine: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountLowStock cuenta medicamentos con stock por debajo del umbral.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM medicines WHERE stock < $1`, threshold,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}
