package orders

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

func TestExportCSV_Cabecera(t *testing.T) {
	out, err := ExportCSV(nil)
	require.NoError(t, err)

	assert.Equal(t, "Order ID,Customer,Date,Amount,Status", strings.TrimSpace(string(out)))
}

// Los nombres con comillas y apóstrofes deben quedar escapados según CSV:
// el campo se envuelve en comillas dobles y las internas se duplican.
func TestExportCSV_EscapaComillas(t *testing.T) {
	checkout := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	list := []*entity.Order{{
		ID:         "ord-1",
		BuyerName:  `O'Brien "Meds"`,
		Total:      decimal.NewFromFloat(79.80),
		Status:     entity.OrderStatusPending,
		CheckoutAt: &checkout,
	}}

	out, err := ExportCSV(list)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `ord-1,"O'Brien ""Meds""",2026-03-14,79.80,pending`, strings.TrimSpace(lines[1]))
}

// Sin checkout (no debería pasar fuera de drafts, pero el export no revienta)
// se usa la fecha de creación.
func TestExportCSV_FechaDeCreacionComoFallback(t *testing.T) {
	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	list := []*entity.Order{{
		ID:        "ord-2",
		BuyerName: "Farmacia Central",
		Total:     decimal.NewFromInt(100),
		Status:    entity.OrderStatusCancelled,
		CreatedAt: created,
	}}

	out, err := ExportCSV(list)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2026-01-02")
	assert.Contains(t, string(out), "100.00")
}
