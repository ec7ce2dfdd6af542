package dto

import "github.com/shopspring/decimal"

// TopMedicineDTO widget de medicamentos más vendidos.
type TopMedicineDTO struct {
	MedicineID string          `json:"medicine_id"`
	Name       string          `json:"name"`
	UnitsSold  int             `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO resumen para /admin/dashboard.
type DashboardSummaryDTO struct {
	OrdersByStatus  map[string]int   `json:"orders_by_status"`
	TodayRevenue    decimal.Decimal  `json:"today_revenue"`
	MonthlyRevenue  decimal.Decimal  `json:"monthly_revenue"`
	TopMedicines    []TopMedicineDTO `json:"top_medicines"`
	PendingBuyers   int              `json:"pending_buyers"`
	LowStockCount   int              `json:"low_stock_count"`
}
