package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMedicineRequest alta de medicamento en el catálogo.
type CreateMedicineRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	Unit        string          `json:"unit"`
	BatchNo     string          `json:"batch_no"`
	ExpiryDate  *time.Time      `json:"expiry_date"`
	ImageURL    string          `json:"image_url"`
}

// UpdateMedicineRequest edición parcial (punteros = campo opcional).
type UpdateMedicineRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Unit        *string          `json:"unit"`
	BatchNo     *string          `json:"batch_no"`
	ExpiryDate  *time.Time       `json:"expiry_date"`
	ImageURL    *string          `json:"image_url"`
}

// MedicineResponse representación pública de un medicamento.
type MedicineResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Unit        string          `json:"unit"`
	BatchNo     string          `json:"batch_no,omitempty"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MedicineListResponse listado paginado.
type MedicineListResponse struct {
	Items []MedicineResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
