package dto

import "time"

// AddressDTO dirección de entrega.
type AddressDTO struct {
	ID         string `json:"id,omitempty"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default"`
}

// UpdateBuyerRequest edición parcial del perfil del comprador.
type UpdateBuyerRequest struct {
	BusinessName *string `json:"business_name"`
	ContactName  *string `json:"contact_name"`
	Phone        *string `json:"phone"`
	DrugLicense  *string `json:"drug_license"`
}

// BuyerResponse representación de un comprador (sin credencial).
type BuyerResponse struct {
	ID           string       `json:"id"`
	BusinessName string       `json:"business_name"`
	ContactName  string       `json:"contact_name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	DrugLicense  string       `json:"drug_license"`
	Addresses    []AddressDTO `json:"addresses"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// BuyerListResponse listado paginado.
type BuyerListResponse struct {
	Items []BuyerResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
