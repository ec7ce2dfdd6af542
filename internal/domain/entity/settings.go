package entity

import "time"

// Settings perfil de la tienda (fila única, editable desde /admin/settings).
type Settings struct {
	ID                string
	StoreName         string
	ContactEmail      string
	ContactPhone      string
	Address           string
	CurrencyCode      string // ISO 4217, ej. INR
	LowStockThreshold int    // umbral para el widget de stock bajo del dashboard
	UpdatedAt         time.Time
}
