package usecase

import (
	"time"

	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// defaultLowStockThreshold umbral inicial para el widget de stock bajo.
const defaultLowStockThreshold = 10

// SettingsUseCase perfil de la tienda (fila única).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración de la tienda, con defaults si aún no existe fila.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.Settings{
			CurrencyCode:      "INR",
			LowStockThreshold: defaultLowStockThreshold,
		}
	}
	return toSettingsResponse(s), nil
}

// Update edición parcial; crea la fila si no existe.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.Settings{
			ID:                "store",
			CurrencyCode:      "INR",
			LowStockThreshold: defaultLowStockThreshold,
		}
	}
	if in.StoreName != nil {
		s.StoreName = *in.StoreName
	}
	if in.ContactEmail != nil {
		s.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		s.ContactPhone = *in.ContactPhone
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.CurrencyCode != nil {
		s.CurrencyCode = *in.CurrencyCode
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold >= 0 {
		s.LowStockThreshold = *in.LowStockThreshold
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		StoreName:         s.StoreName,
		ContactEmail:      s.ContactEmail,
		ContactPhone:      s.ContactPhone,
		Address:           s.Address,
		CurrencyCode:      s.CurrencyCode,
		LowStockThreshold: s.LowStockThreshold,
		UpdatedAt:         s.UpdatedAt,
	}
}
