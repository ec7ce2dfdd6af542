package repository

import "github.com/jhoicas/Farmaventa-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para el carrito (una fila
// por comprador+medicamento). Siempre se usa dentro de la transacción de
// reserva de stock para que carrito y stock nunca se desincronicen.
type CartRepository interface {
	Get(buyerID, medicineID string) (*entity.CartItem, error)
	Upsert(item *entity.CartItem) error
	Delete(buyerID, medicineID string) error
	ListByBuyer(buyerID string) ([]*entity.CartItem, error)
	ClearByBuyer(buyerID string) error
}
