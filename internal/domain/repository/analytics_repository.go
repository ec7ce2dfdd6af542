package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopMedicineResult resultado crudo de la consulta de medicamentos más vendidos.
type TopMedicineResult struct {
	MedicineID string
	Name       string
	UnitsSold  int
	Revenue    decimal.Decimal // suma de subtotales de línea
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos). Los drafts quedan
// fuera de todos los agregados salvo del conteo explícito por estado.
type AnalyticsRepository interface {
	// CountOrdersByStatus devuelve la cantidad de órdenes por estado.
	CountOrdersByStatus(ctx context.Context) (map[string]int, error)
	// GetRevenue suma los totales de órdenes no canceladas (sin drafts) en el período.
	GetRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// GetTopMedicines devuelve los top N medicamentos por unidades vendidas en el período.
	GetTopMedicines(ctx context.Context, from, to time.Time, top int) ([]TopMedicineResult, error)
	// CountLowStock cuenta medicamentos con stock por debajo del umbral.
	CountLowStock(ctx context.Context, threshold int) (int, error)
}
