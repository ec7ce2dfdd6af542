package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine representa un medicamento del catálogo mayorista.
// Stock solo se muta vía operaciones de carrito (reserva/liberación bajo
// transacción) o por edición administrativa; nunca puede quedar negativo.
type Medicine struct {
	ID          string
	Name        string
	Description string
	Category    string          // analgésicos, antibióticos, etc.
	Price       decimal.Decimal // precio mayorista por unidad de venta
	Stock       int
	Unit        string // unidad de venta: strip, bottle, box
	BatchNo     string
	ExpiryDate  *time.Time
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
