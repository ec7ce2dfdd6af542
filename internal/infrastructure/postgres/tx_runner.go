package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Farmaventa-api/internal/application/cart"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// Ensure TxRunner implements cart.TxRunner.
var _ cart.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es la garantía de atomicidad de la reconciliación carrito/stock/draft.
func (r *TxRunner) Run(ctx context.Context, fn func(
	medicineRepo repository.MedicineRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	medicineRepo := NewMedicineRepository(tx)
	cartRepo := NewCartRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(medicineRepo, cartRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
