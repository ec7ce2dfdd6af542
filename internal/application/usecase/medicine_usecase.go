package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// MedicineUseCase casos de uso CRUD para el catálogo de medicamentos.
// El stock reservado por carritos se muta vía el caso de uso de carrito;
// aquí solo se edita por acción administrativa directa.
type MedicineUseCase struct {
	repo repository.MedicineRepository
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(repo repository.MedicineRepository) *MedicineUseCase {
	return &MedicineUseCase{repo: repo}
}

// Create da de alta un medicamento.
func (uc *MedicineUseCase) Create(in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThanOrEqual(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		in.Unit = "strip"
	}
	now := time.Now()
	med := &entity.Medicine{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Unit:        in.Unit,
		BatchNo:     in.BatchNo,
		ExpiryDate:  in.ExpiryDate,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(med); err != nil {
		return nil, err
	}
	return toMedicineResponse(med), nil
}

// GetByID obtiene un medicamento por ID.
func (uc *MedicineUseCase) GetByID(id string) (*dto.MedicineResponse, error) {
	med, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, nil
	}
	return toMedicineResponse(med), nil
}

// Update edición administrativa. El stock nunca puede fijarse negativo.
func (uc *MedicineUseCase) Update(id string, in dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	med, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, nil
	}
	if in.Name != nil {
		med.Name = *in.Name
	}
	if in.Description != nil {
		med.Description = *in.Description
	}
	if in.Category != nil {
		med.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		med.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		med.Stock = *in.Stock
	}
	if in.Unit != nil {
		med.Unit = *in.Unit
	}
	if in.BatchNo != nil {
		med.BatchNo = *in.BatchNo
	}
	if in.ExpiryDate != nil {
		med.ExpiryDate = in.ExpiryDate
	}
	if in.ImageURL != nil {
		med.ImageURL = *in.ImageURL
	}
	med.UpdatedAt = time.Now()
	if err := uc.repo.Update(med); err != nil {
		return nil, err
	}
	return toMedicineResponse(med), nil
}

// List lista el catálogo con filtro opcional por categoría.
func (uc *MedicineUseCase) List(category string, limit, offset int) (*dto.MedicineListResponse, error) {
	list, err := uc.repo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMedicineResponse(m))
	}
	return &dto.MedicineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un medicamento del catálogo.
func (uc *MedicineUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMedicineResponse(m *entity.Medicine) *dto.MedicineResponse {
	if m == nil {
		return nil
	}
	return &dto.MedicineResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Price:       m.Price,
		Stock:       m.Stock,
		Unit:        m.Unit,
		BatchNo:     m.BatchNo,
		ExpiryDate:  m.ExpiryDate,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
