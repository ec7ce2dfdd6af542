package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateOrderStatusRequest transición de estado disparada por un admin.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de orden.
type OrderItemResponse struct {
	MedicineID string          `json:"medicine_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// OrderResponse representación de una orden.
type OrderResponse struct {
	ID         string              `json:"id"`
	BuyerID    string              `json:"buyer_id"`
	BuyerName  string              `json:"buyer_name"`
	Items      []OrderItemResponse `json:"items"`
	ItemCount  int                 `json:"item_count"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Tax        decimal.Decimal     `json:"tax"`
	Total      decimal.Decimal     `json:"total"`
	Status     string              `json:"status"`
	CheckoutAt *time.Time          `json:"checkout_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
