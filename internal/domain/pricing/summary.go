package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

// TaxRate impuesto fijo del 5% aplicado sobre el subtotal de toda orden.
var TaxRate = decimal.NewFromFloat(0.05)

// Summary totales de una orden. Shipping siempre es cero (mayorista).
type Summary struct {
	ItemCount int
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
}

// Summarize calcula los totales de un conjunto de líneas (servicio de dominio).
// Subtotal = Σ(precio * cantidad); Tax = Subtotal * 5%; Total = Subtotal + Tax.
// La misma función alimenta los totales mostrados y los persistidos, de modo
// que nunca diverjan. Los montos se redondean a 2 decimales.
func Summarize(items []entity.OrderItem) Summary {
	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		line := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
		count += it.Quantity
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	return Summary{
		ItemCount: count,
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  decimal.Zero,
		Total:     subtotal.Add(tax),
	}
}
