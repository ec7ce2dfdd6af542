package dto

import "time"

// UpdateSettingsRequest edición parcial del perfil de la tienda.
type UpdateSettingsRequest struct {
	StoreName         *string `json:"store_name"`
	ContactEmail      *string `json:"contact_email"`
	ContactPhone      *string `json:"contact_phone"`
	Address           *string `json:"address"`
	CurrencyCode      *string `json:"currency_code"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
}

// SettingsResponse perfil de la tienda.
type SettingsResponse struct {
	StoreName         string    `json:"store_name"`
	ContactEmail      string    `json:"contact_email"`
	ContactPhone      string    `json:"contact_phone"`
	Address           string    `json:"address"`
	CurrencyCode      string    `json:"currency_code"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at"`
}
