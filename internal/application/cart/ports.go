package cart

import (
	"context"

	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que reserva de stock, línea de carrito y draft de orden se muevan juntos o no se muevan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		medicineRepo repository.MedicineRepository,
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
