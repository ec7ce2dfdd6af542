package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Summarize: subtotal + 5% de impuesto + envío gratis.
//
// Vector de referencia calculado a mano:
//
//	15.50 × 2 + 45.00 × 1 = 76.00
//	76.00 × 0.05          =  3.80
//	76.00 + 3.80 + 0.00   = 79.80
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_VectorExacto(t *testing.T) {
	items := []entity.OrderItem{
		{MedicineID: "m1", Name: "Paracetamol 500mg", Price: decimal.NewFromFloat(15.50), Quantity: 2},
		{MedicineID: "m2", Name: "Amoxicilina 250mg", Price: decimal.NewFromFloat(45.00), Quantity: 1},
	}

	s := pricing.Summarize(items)

	assert.Equal(t, 3, s.ItemCount, "item_count suma cantidades, no líneas")
	assert.True(t, s.Subtotal.Equal(decimal.NewFromFloat(76.00)), "subtotal: %s", s.Subtotal)
	assert.True(t, s.Tax.Equal(decimal.NewFromFloat(3.80)), "tax: %s", s.Tax)
	assert.True(t, s.Shipping.IsZero(), "shipping debe ser cero")
	assert.True(t, s.Total.Equal(decimal.NewFromFloat(79.80)), "total: %s", s.Total)
}

func TestSummarize_CarritoVacio(t *testing.T) {
	s := pricing.Summarize(nil)

	assert.Equal(t, 0, s.ItemCount)
	assert.True(t, s.Subtotal.IsZero())
	assert.True(t, s.Tax.IsZero())
	assert.True(t, s.Total.IsZero())
}

// El impuesto se redondea a 2 decimales línea a línea del total, no se trunca.
func TestSummarize_RedondeoDelImpuesto(t *testing.T) {
	items := []entity.OrderItem{
		// 3 × 33.33 = 99.99 → 5% = 4.9995 → redondea a 5.00
		{MedicineID: "m1", Name: "Ibuprofeno", Price: decimal.NewFromFloat(33.33), Quantity: 3},
	}

	s := pricing.Summarize(items)

	require.True(t, s.Subtotal.Equal(decimal.NewFromFloat(99.99)))
	assert.True(t, s.Tax.Equal(decimal.NewFromFloat(5.00)), "tax: %s", s.Tax)
	assert.True(t, s.Total.Equal(decimal.NewFromFloat(104.99)), "total: %s", s.Total)
}
