package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem representa una línea del carrito de un comprador.
// Name y Price se denormalizan al momento de agregar para que el draft de
// orden refleje el precio reservado aunque el medicamento cambie después.
type CartItem struct {
	BuyerID    string
	MedicineID string
	Name       string
	Price      decimal.Decimal
	Quantity   int // siempre > 0; llegar a 0 elimina la línea
	AddedAt    time.Time
	UpdatedAt  time.Time
}
