package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest agrega una unidad del medicamento al carrito.
type AddCartItemRequest struct {
	MedicineID string `json:"medicine_id" validate:"required"`
}

// SetCartQuantityRequest fija la cantidad de una línea (<= 0 la elimina).
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	MedicineID string          `json:"medicine_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
	AddedAt    time.Time       `json:"added_at"`
}

// CartResponse carrito completo con los totales del draft sincronizado.
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Tax       decimal.Decimal    `json:"tax"`
	Shipping  decimal.Decimal    `json:"shipping"`
	Total     decimal.Decimal    `json:"total"`
}
