package dto

import "time"

// CreateAdminRequest alta de un administrador (queda en estado pending).
type CreateAdminRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	Password    string   `json:"password" validate:"required,min=8"`
	Permissions []string `json:"permissions"`
}

// UpdateAdminRequest edición parcial de un administrador.
type UpdateAdminRequest struct {
	Name        *string   `json:"name"`
	Phone       *string   `json:"phone"`
	Permissions *[]string `json:"permissions"`
}

// AdminResponse representación de un administrador (sin credencial).
type AdminResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminListResponse listado paginado.
type AdminListResponse struct {
	Items []AdminResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
