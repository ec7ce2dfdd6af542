package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// BuyerUseCase ciclo de vida de compradores: cola de solicitudes (pending),
// aprobación y habilitación/deshabilitación. No existe borrado.
type BuyerUseCase struct {
	repo repository.BuyerRepository
}

// NewBuyerUseCase construye el caso de uso.
func NewBuyerUseCase(repo repository.BuyerRepository) *BuyerUseCase {
	return &BuyerUseCase{repo: repo}
}

// GetByID obtiene un comprador por ID.
func (uc *BuyerUseCase) GetByID(id string) (*dto.BuyerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return toBuyerResponse(b), nil
}

// ListByStatus lista compradores por estado ("" = todos).
// ListByStatus(pending) es la cola de solicitudes de registro.
func (uc *BuyerUseCase) ListByStatus(status string, limit, offset int) (*dto.BuyerListResponse, error) {
	list, err := uc.repo.ListByStatus(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BuyerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBuyerResponse(b))
	}
	return &dto.BuyerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Approve mueve una solicitud pending al conjunto activo (approved).
func (uc *BuyerUseCase) Approve(id string) (*dto.BuyerResponse, error) {
	return uc.transition(id, entity.StatusApproved)
}

// Toggle alterna approved ⇄ disabled. Un pending no puede deshabilitarse
// directamente: primero debe aprobarse.
func (uc *BuyerUseCase) Toggle(id string) (*dto.BuyerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBuyerNotFound
	}
	switch b.Status {
	case entity.StatusApproved:
		return uc.transition(id, entity.StatusDisabled)
	case entity.StatusDisabled:
		return uc.transition(id, entity.StatusApproved)
	default:
		return nil, domain.ErrConflict
	}
}

func (uc *BuyerUseCase) transition(id, to string) (*dto.BuyerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBuyerNotFound
	}
	if !entity.CanTransitionApproval(b.Status, to) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.repo.UpdateStatus(id, to); err != nil {
		return nil, err
	}
	b.Status = to
	return toBuyerResponse(b), nil
}

// UpdateProfile edición parcial del perfil (por el propio comprador).
func (uc *BuyerUseCase) UpdateProfile(id string, in dto.UpdateBuyerRequest) (*dto.BuyerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBuyerNotFound
	}
	if in.BusinessName != nil {
		b.BusinessName = *in.BusinessName
	}
	if in.ContactName != nil {
		b.ContactName = *in.ContactName
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.DrugLicense != nil {
		b.DrugLicense = *in.DrugLicense
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBuyerResponse(b), nil
}

// AddAddress agrega una dirección. La primera dirección del comprador queda
// como default; si la nueva llega marcada default, desplaza a la anterior.
func (uc *BuyerUseCase) AddAddress(buyerID string, in dto.AddressDTO) (*dto.BuyerResponse, error) {
	b, err := uc.repo.GetByID(buyerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBuyerNotFound
	}
	if in.Line1 == "" || in.City == "" {
		return nil, domain.ErrInvalidInput
	}
	addr := entity.Address{
		ID:         uuid.New().String(),
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		IsDefault:  in.IsDefault || len(b.Addresses) == 0,
	}
	if addr.IsDefault {
		for i := range b.Addresses {
			b.Addresses[i].IsDefault = false
		}
	}
	b.Addresses = append(b.Addresses, addr)
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBuyerResponse(b), nil
}

// SetDefaultAddress marca la dirección indicada como default y desmarca el resto.
// Invariante: exactamente una dirección default por comprador.
func (uc *BuyerUseCase) SetDefaultAddress(buyerID, addressID string) (*dto.BuyerResponse, error) {
	b, err := uc.repo.GetByID(buyerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBuyerNotFound
	}
	found := false
	for i := range b.Addresses {
		if b.Addresses[i].ID == addressID {
			b.Addresses[i].IsDefault = true
			found = true
		} else {
			b.Addresses[i].IsDefault = false
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBuyerResponse(b), nil
}

func toBuyerResponse(b *entity.Buyer) *dto.BuyerResponse {
	if b == nil {
		return nil
	}
	addrs := make([]dto.AddressDTO, 0, len(b.Addresses))
	for _, a := range b.Addresses {
		addrs = append(addrs, dto.AddressDTO{
			ID:         a.ID,
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			IsDefault:  a.IsDefault,
		})
	}
	return &dto.BuyerResponse{
		ID:           b.ID,
		BusinessName: b.BusinessName,
		ContactName:  b.ContactName,
		Email:        b.Email,
		Phone:        b.Phone,
		DrugLicense:  b.DrugLicense,
		Addresses:    addrs,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
