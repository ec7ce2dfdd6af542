package orders

import (
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// UseCase ciclo de vida de órdenes del back office: listado, detalle y
// transiciones de estado validadas contra la máquina de estados.
// Las transiciones draft → pending las dispara el checkout, no un admin.
type UseCase struct {
	orderRepo repository.OrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(orderRepo repository.OrderRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo}
}

// List lista órdenes con filtro opcional por estado.
// includeDrafts permite a los admins observar carritos en curso.
func (uc *UseCase) List(status string, includeDrafts bool, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.IsValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.List(status, !includeDrafts, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID obtiene una orden por ID.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return toOrderResponse(o), nil
}

// ListByBuyer historial de órdenes de un comprador (storefront).
func (uc *UseCase) ListByBuyer(buyerID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByBuyer(buyerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus aplica una transición de estado disparada por un admin.
// draft no es un destino válido desde aquí, y los estados terminales
// (delivered, cancelled) no admiten más cambios.
func (uc *UseCase) UpdateStatus(id, newStatus string) (*dto.OrderResponse, error) {
	if !entity.IsValidOrderStatus(newStatus) || newStatus == entity.OrderStatusDraft {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	if !entity.CanTransitionOrder(o.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.orderRepo.UpdateStatus(id, newStatus); err != nil {
		return nil, err
	}
	o.Status = newStatus
	return toOrderResponse(o), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			MedicineID: it.MedicineID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		BuyerID:    o.BuyerID,
		BuyerName:  o.BuyerName,
		Items:      items,
		ItemCount:  o.ItemCount,
		Subtotal:   o.Subtotal,
		Tax:        o.Tax,
		Total:      o.Total,
		Status:     o.Status,
		CheckoutAt: o.CheckoutAt,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
