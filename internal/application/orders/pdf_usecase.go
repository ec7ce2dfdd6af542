package orders

import (
	"context"

	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// PDFUseCase genera el PDF de una orden para descarga desde el back office.
// Los drafts no tienen representación: todavía son carritos en curso.
type PDFUseCase struct {
	orderRepo    repository.OrderRepository
	buyerRepo    repository.BuyerRepository
	settingsRepo repository.SettingsRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	buyerRepo repository.BuyerRepository,
	settingsRepo repository.SettingsRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:    orderRepo,
		buyerRepo:    buyerRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// Generate genera el PDF de la orden indicada.
func (uc *PDFUseCase) Generate(ctx context.Context, orderID string) ([]byte, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.Status == entity.OrderStatusDraft {
		return nil, domain.ErrConflict
	}
	buyer, err := uc.buyerRepo.GetByID(o.BuyerID)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateOrderPDF(ctx, o, buyer, settings)
}
