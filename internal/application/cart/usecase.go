package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/pricing"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// UseCase reconciliación carrito/stock. Toda mutación corre en una transacción
// con SELECT FOR UPDATE sobre el medicamento: el stock reservado y la línea de
// carrito cambian juntos, y el draft de orden del comprador se recalcula en la
// misma transacción. Invariante: stock final = stock inicial - cantidad en
// carrito, y el stock nunca baja de cero.
type UseCase struct {
	txRunner  TxRunner
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	buyerRepo repository.BuyerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	buyerRepo repository.BuyerRepository,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		buyerRepo: buyerRepo,
	}
}

// Add agrega una unidad del medicamento al carrito: qty+1 (o inserta con 1) y
// stock-1. Falla con ErrInsufficientStock si no queda stock disponible.
func (uc *UseCase) Add(ctx context.Context, buyerID, medicineID string) (*dto.CartResponse, error) {
	if buyerID == "" || medicineID == "" {
		return nil, domain.ErrInvalidInput
	}
	buyer, err := uc.buyerRepo.GetByID(buyerID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, domain.ErrBuyerNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		medRepo repository.MedicineRepository,
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
	) error {
		med, err := medRepo.GetForUpdate(medicineID)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}
		if med.Stock < 1 {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		item, err := cartRepo.Get(buyerID, medicineID)
		if err != nil {
			return err
		}
		if item == nil {
			item = &entity.CartItem{
				BuyerID:    buyerID,
				MedicineID: medicineID,
				Name:       med.Name,
				Price:      med.Price,
				Quantity:   1,
				AddedAt:    now,
				UpdatedAt:  now,
			}
		} else {
			item.Quantity++
			item.UpdatedAt = now
		}
		if err := cartRepo.Upsert(item); err != nil {
			return err
		}
		if err := medRepo.UpdateStock(medicineID, med.Stock-1); err != nil {
			return err
		}
		return uc.syncDraft(cartRepo, orderRepo, buyer, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, buyerID)
}

// SetQuantity fija la cantidad de la línea. q <= 0 elimina la línea y devuelve
// todo lo reservado; si no, aplica -(q - anterior) al stock con piso en cero.
func (uc *UseCase) SetQuantity(ctx context.Context, buyerID, medicineID string, quantity int) (*dto.CartResponse, error) {
	if buyerID == "" || medicineID == "" {
		return nil, domain.ErrInvalidInput
	}
	buyer, err := uc.buyerRepo.GetByID(buyerID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, domain.ErrBuyerNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		medRepo repository.MedicineRepository,
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
	) error {
		item, err := cartRepo.Get(buyerID, medicineID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		med, err := medRepo.GetForUpdate(medicineID)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		if quantity <= 0 {
			// Eliminar la línea devuelve la reserva completa.
			if err := cartRepo.Delete(buyerID, medicineID); err != nil {
				return err
			}
			if err := medRepo.UpdateStock(medicineID, med.Stock+item.Quantity); err != nil {
				return err
			}
			return uc.syncDraft(cartRepo, orderRepo, buyer, now)
		}

		delta := quantity - item.Quantity
		if delta > 0 && med.Stock < delta {
			return domain.ErrInsufficientStock
		}
		item.Quantity = quantity
		item.UpdatedAt = now
		if err := cartRepo.Upsert(item); err != nil {
			return err
		}
		if err := medRepo.UpdateStock(medicineID, med.Stock-delta); err != nil {
			return err
		}
		return uc.syncDraft(cartRepo, orderRepo, buyer, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, buyerID)
}

// Remove elimina la línea y restaura sus unidades reservadas al stock.
func (uc *UseCase) Remove(ctx context.Context, buyerID, medicineID string) (*dto.CartResponse, error) {
	return uc.SetQuantity(ctx, buyerID, medicineID, 0)
}

// Clear restaura el stock de todas las líneas, borra el draft y vacía el carrito.
func (uc *UseCase) Clear(ctx context.Context, buyerID string) error {
	if buyerID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		medRepo repository.MedicineRepository,
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
	) error {
		items, err := cartRepo.ListByBuyer(buyerID)
		if err != nil {
			return err
		}
		for _, it := range items {
			med, err := medRepo.GetForUpdate(it.MedicineID)
			if err != nil {
				return err
			}
			if med == nil {
				continue // medicamento borrado por un admin; no hay reserva que devolver
			}
			if err := medRepo.UpdateStock(it.MedicineID, med.Stock+it.Quantity); err != nil {
				return err
			}
		}
		if err := cartRepo.ClearByBuyer(buyerID); err != nil {
			return err
		}
		return orderRepo.DeleteDraftByBuyer(buyerID)
	})
}

// Checkout finaliza el draft: draft → pending con fecha de checkout, y vacía
// el carrito SIN devolver stock (la reserva pasa a ser compromiso real).
func (uc *UseCase) Checkout(ctx context.Context, buyerID string) (*dto.OrderResponse, error) {
	if buyerID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.OrderResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.MedicineRepository,
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
	) error {
		draft, err := orderRepo.GetDraftByBuyer(buyerID)
		if err != nil {
			return err
		}
		if draft == nil || len(draft.Items) == 0 {
			return domain.ErrEmptyCart
		}
		now := time.Now()
		draft.Status = entity.OrderStatusPending
		draft.CheckoutAt = &now
		draft.UpdatedAt = now
		if err := orderRepo.Update(draft); err != nil {
			return err
		}
		if err := cartRepo.ClearByBuyer(buyerID); err != nil {
			return err
		}
		out = toOrderResponse(draft)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve el carrito del comprador con totales (misma fórmula que el draft).
func (uc *UseCase) Get(_ context.Context, buyerID string) (*dto.CartResponse, error) {
	items, err := uc.cartRepo.ListByBuyer(buyerID)
	if err != nil {
		return nil, err
	}
	lines := make([]entity.OrderItem, 0, len(items))
	resp := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, it := range items {
		lines = append(lines, entity.OrderItem{
			MedicineID: it.MedicineID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
		resp.Items = append(resp.Items, dto.CartItemResponse{
			MedicineID: it.MedicineID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			LineTotal:  it.Price.Mul(decimalFromInt(it.Quantity)),
			AddedAt:    it.AddedAt,
		})
	}
	sum := pricing.Summarize(lines)
	resp.ItemCount = sum.ItemCount
	resp.Subtotal = sum.Subtotal
	resp.Tax = sum.Tax
	resp.Shipping = sum.Shipping
	resp.Total = sum.Total
	return resp, nil
}

// syncDraft recalcula y persiste la orden draft del comprador a partir del
// estado actual del carrito (dentro de la misma transacción que lo mutó).
// Carrito vacío elimina el draft: nunca hay más de un draft por comprador.
func (uc *UseCase) syncDraft(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	buyer *entity.Buyer,
	now time.Time,
) error {
	items, err := cartRepo.ListByBuyer(buyer.ID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return orderRepo.DeleteDraftByBuyer(buyer.ID)
	}

	lines := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, entity.OrderItem{
			MedicineID: it.MedicineID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}
	sum := pricing.Summarize(lines)

	draft, err := orderRepo.GetDraftByBuyer(buyer.ID)
	if err != nil {
		return err
	}
	isNew := draft == nil
	if isNew {
		draft = &entity.Order{
			ID:        uuid.New().String(),
			BuyerID:   buyer.ID,
			Status:    entity.OrderStatusDraft,
			CreatedAt: now,
		}
	}
	draft.BuyerName = buyer.BusinessName
	draft.Items = lines
	draft.ItemCount = sum.ItemCount
	draft.Subtotal = sum.Subtotal
	draft.Tax = sum.Tax
	draft.Total = sum.Total
	draft.UpdatedAt = now

	if isNew {
		return orderRepo.Create(draft)
	}
	return orderRepo.Update(draft)
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
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
