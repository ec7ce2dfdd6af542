// Package analytics contiene el caso de uso de lectura para el dashboard
// administrativo (ventas, estados de órdenes, solicitudes y stock bajo).
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

const dashboardTopMedicines = 5 // medicamentos en el widget del dashboard

// DashboardUseCase genera el resumen del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) más los conteos
// de compradores pendientes y del umbral de stock bajo configurado.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	buyerRepo     repository.BuyerRepository
	settingsRepo  repository.SettingsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	buyerRepo repository.BuyerRepository,
	settingsRepo repository.SettingsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		buyerRepo:     buyerRepo,
		settingsRepo:  settingsRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	byStatus, err := uc.analyticsRepo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	todayRevenue, err := uc.analyticsRepo.GetRevenue(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	monthlyRevenue, err := uc.analyticsRepo.GetRevenue(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	topRaw, err := uc.analyticsRepo.GetTopMedicines(ctx, monthStart, monthEnd, dashboardTopMedicines)
	if err != nil {
		return nil, err
	}
	pendingBuyers, err := uc.buyerRepo.CountByStatus(entity.StatusPending)
	if err != nil {
		return nil, err
	}

	threshold := 0
	if settings, err := uc.settingsRepo.Get(); err == nil && settings != nil {
		threshold = settings.LowStockThreshold
	}
	lowStock := 0
	if threshold > 0 {
		lowStock, err = uc.analyticsRepo.CountLowStock(ctx, threshold)
		if err != nil {
			return nil, err
		}
	}

	top := make([]dto.TopMedicineDTO, 0, len(topRaw))
	for _, t := range topRaw {
		top = append(top, dto.TopMedicineDTO{
			MedicineID: t.MedicineID,
			Name:       t.Name,
			UnitsSold:  t.UnitsSold,
			Revenue:    t.Revenue,
		})
	}

	return &dto.DashboardSummaryDTO{
		OrdersByStatus: byStatus,
		TodayRevenue:   todayRevenue,
		MonthlyRevenue: monthlyRevenue,
		TopMedicines:   top,
		PendingBuyers:  pendingBuyers,
		LowStockCount:  lowStock,
	}, nil
}
